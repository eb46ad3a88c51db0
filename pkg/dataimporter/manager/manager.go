package manager

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/railreport/railreport/pkg/dataimporter/datasets"
	"github.com/railreport/railreport/pkg/dataimporter/formats"
	"github.com/railreport/railreport/pkg/dataimporter/formats/fraotp"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/rs/zerolog/log"
)

func GetDataset(identifier string) (datasets.DataSet, error) {
	registered := GetRegisteredDataSets()

	for _, dataset := range registered {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return datasets.DataSet{}, errors.New("Dataset could not be found")
}

// ImportDataset parses & imports a dataset. An overrideSource path or URL
// replaces the dataset's registered source.
func ImportDataset(dataset datasets.DataSet, overrideSource string) error {
	log.Info().Interface("dataset", dataset).Msg("Found dataset")

	var format formats.Format

	switch dataset.Format {
	case datasets.DataSetFormatFRAOTP:
		format = &fraotp.QuarterlyReport{}
	default:
		return fmt.Errorf("Unrecognised format %s", dataset.Format)
	}

	source := dataset.Source
	if overrideSource != "" {
		source = overrideSource
	}

	if isValidUrl(source) {
		tempFile, err := tempDownloadFile(source)
		if err != nil {
			return err
		}

		source = tempFile.Name()
		defer os.Remove(tempFile.Name())
	}

	file, err := os.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := format.ParseFile(file); err != nil {
		return err
	}

	return format.Import(dataset, &otp.DataSource{
		OriginalFormat: string(dataset.Format),
		Provider:       dataset.Provider.Name,
		DatasetID:      dataset.Identifier,
		Timestamp:      fmt.Sprintf("%d", time.Now().Unix()),
	})
}

func isValidUrl(toTest string) bool {
	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

func tempDownloadFile(source string) (*os.File, error) {
	req, _ := http.NewRequest("GET", source, nil)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(os.TempDir(), "railreport-data-importer-")
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot create temporary file")
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return nil, err
	}

	return tmpFile, nil
}
