// Package testutil holds helpers shared by the package tests.
package testutil
