package datasets

type DataSet struct {
	Identifier    string
	DataSourceRef string
	Format        DataSetFormat

	Provider Provider

	Source string
}

type DataSetFormat string

const (
	DataSetFormatFRAOTP DataSetFormat = "us-fra-otp"
)

type Provider struct {
	Name    string
	Website string
}
