// Package observe provides pass-through cursor adaptors that report what
// flows through a sequence: Instrument records Prometheus metrics and Log
// writes structured log records. Neither changes values or done signalling.
package observe
