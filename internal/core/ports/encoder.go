package ports

import "io"

// Encoder renders build agents and build records to a writer.
//
//go:generate mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type Encoder interface {
	Encode(w io.Writer, v any) error
}

// EncoderProvider resolves an Encoder by output format name.
type EncoderProvider interface {
	Encoder(format string) (Encoder, error)
}
