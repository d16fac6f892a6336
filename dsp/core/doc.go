// Package core holds the configuration and numeric helpers shared by the
// pattern and noise processors.
package core
