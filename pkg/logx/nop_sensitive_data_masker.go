package logx

// NopSensitiveDataMasker passes dumps through unchanged. For tests and
// local runs where the account header is not a secret.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
