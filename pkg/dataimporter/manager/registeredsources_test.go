package manager

import (
	"testing"

	"github.com/railreport/railreport/pkg/dataimporter/datasets"
)

func TestLoadDataSets(t *testing.T) {
	loaded, err := loadDataSets("testdata/datasources/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two documents in one file, three datasets between them. The
	// notes.txt file is skipped.
	if len(loaded) != 3 {
		t.Fatalf("loaded %d datasets, want 3", len(loaded))
	}

	byIdentifier := map[string]datasets.DataSet{}
	for _, dataset := range loaded {
		byIdentifier[dataset.Identifier] = dataset
	}

	fra, found := byIdentifier["us-fra-otp-quarterly"]
	if !found {
		t.Fatalf("us-fra-otp-quarterly missing from %v", byIdentifier)
	}
	if fra.DataSourceRef != "us-fra" {
		t.Errorf("DataSourceRef = %q, want us-fra", fra.DataSourceRef)
	}
	if fra.Provider.Name != "Federal Railroad Administration" {
		t.Errorf("Provider = %q, want Federal Railroad Administration", fra.Provider.Name)
	}
	if fra.Format != datasets.DataSetFormatFRAOTP {
		t.Errorf("Format = %q, want %q", fra.Format, datasets.DataSetFormatFRAOTP)
	}
	if fra.Source != "https://example.com/otp.csv" {
		t.Errorf("Source = %q", fra.Source)
	}

	via, found := byIdentifier["ca-via-otp-annual"]
	if !found {
		t.Fatalf("ca-via-otp-annual missing from %v", byIdentifier)
	}
	if via.Provider.Name != "VIA Rail" || via.DataSourceRef != "ca-via" {
		t.Errorf("provider/ref = %q/%q, want VIA Rail/ca-via", via.Provider.Name, via.DataSourceRef)
	}
}

func TestLoadDataSetsMissingDirectory(t *testing.T) {
	if _, err := loadDataSets("testdata/no-such-directory/"); err == nil {
		t.Fatal("expected an error")
	}
}
