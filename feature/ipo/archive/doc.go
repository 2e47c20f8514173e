// Package archive keeps the raw upstream response of every successful fetch in object
// storage, under snapshots/<source>/<YYYY-MM-DD>/<run-id>.json.
package archive
