package tables

import (
	"bytes"
	"context"
	"encoding/csv"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
)

// Loader reads whole delimited files into tables. The first row is the header;
// every later row must have as many fields as it.
type Loader struct {
	FileStore FileStore
}

func (ld *Loader) Load(ctx context.Context, path string) (*data.Table, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"path": path,
	})
	l := ctxlogrus.Get(ctx)

	content, err := ld.FileStore.Load(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "load couldn't read %s", path)
	}

	table, err := parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "load couldn't parse %s", path)
	}

	l.Debugf("Loaded %d rows with columns %q", table.Len(), table.Header)
	return table, nil
}

func parse(content []byte) (*data.Table, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("no header row")
	}
	if err != nil {
		return nil, err
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	return &data.Table{
		Header:  header,
		Records: records,
	}, nil
}
