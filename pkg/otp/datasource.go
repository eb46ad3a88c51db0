package otp

type DataSource struct {
	OriginalFormat string
	Provider       string
	DatasetID      string
	Timestamp      string
}
