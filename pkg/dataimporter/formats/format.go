package formats

import (
	"io"

	"github.com/railreport/railreport/pkg/dataimporter/datasets"
	"github.com/railreport/railreport/pkg/otp"
)

type Format interface {
	ParseFile(io.Reader) error
	Import(datasets.DataSet, *otp.DataSource) error
}
