package datasets

// DataSource is one YAML registry document: a publisher and the datasets
// it provides. Dataset identifiers are composed as
// "<source identifier>-<dataset identifier>" when the registry is loaded.
type DataSource struct {
	Identifier string

	Provider Provider

	Datasets []DataSet
}
