package model

// DecodeRequestBody is the POST /decode payload. Bytes is hex-encoded,
// e.g. "903C64" for a note-on.
type DecodeRequestBody struct {
	Timestamp      int64  `json:"timestamp"`
	Bytes          string `json:"bytes"`
	Count          int    `json:"count"`
	ConvertZeroVel bool   `json:"convert_zero_velocity"`
}

// TransformRequestBody is the POST /transform payload. Snap applies to
// quantize/tighten, Range to jitter/randomize; SeqLength 0 means "one
// past the last timestamp".
type TransformRequestBody struct {
	Op        string      `json:"op"`
	Snap      int         `json:"snap"`
	Range     int         `json:"range"`
	SeqLength int64       `json:"seq_length"`
	Seed      int64       `json:"seed"`
	Events    []EventView `json:"events"`
}

type TransformResponse struct {
	Changed int         `json:"changed"`
	Events  []EventView `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
