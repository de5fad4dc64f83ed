package types

import "log/slog"

type (
	NessusAccessKey string
	NessusSecretKey string
	NetboxToken     string
	ElasticAPIKey   string
)

const maskedValue = "***********"

func (x NessusSecretKey) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x NessusSecretKey) String() string       { return maskedValue }

func (x NetboxToken) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x NetboxToken) String() string       { return maskedValue }

func (x ElasticAPIKey) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x ElasticAPIKey) String() string       { return maskedValue }
