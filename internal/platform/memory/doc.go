// Package memory provides in-process implementations of the storage
// interfaces defined in the internal/store package. Data lives only as long
// as the process; nothing is written to disk.
package memory
