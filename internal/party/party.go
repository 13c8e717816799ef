package party

import (
	"errors"
	"time"
)

// Status discriminates the two kinds of parties sharing one table:
// clients we bill and workers we pay.
type Status string

const (
	StatusClient Status = "client"
	StatusWorker Status = "worker"
)

func (s Status) Valid() bool {
	return s == StatusClient || s == StatusWorker
}

// Party represents a client or a worker.
type Party struct {
	ID        int64
	Name      string
	Status    Status
	CreatedAt time.Time
}

var (
	ErrNotFound = errors.New("party not found")
	ErrExists   = errors.New("party already exists")
	ErrInvalid  = errors.New("invalid party")
)
