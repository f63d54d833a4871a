// Package fsutil finds the Reabank files a directory run should number and
// writes numbered files back without leaving partial output behind.
package fsutil
