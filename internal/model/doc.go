package model

// Package model defines the data passed between the services and the UI:
// in-memory file blobs, compression tasks, and their status values. Values
// are created per operation and never shared between concurrent operations.
