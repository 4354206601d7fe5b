package sheets

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	unformattedValue = "UNFORMATTED_VALUE"
	formattedString  = "FORMATTED_STRING"
)

type googleReader struct {
	service *gsheets.Service
}

func newGoogleReader(ctx context.Context, credentialsFile string) (*googleReader, error) {
	service, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "sheets service")
	}

	return &googleReader{service: service}, nil
}

// ReadSheet lê a aba inteira; números vêm sem formatação e datas como texto
func (r *googleReader) ReadSheet(ctx context.Context, spreadsheetID, sheet string) ([][]interface{}, error) {
	response, err := r.service.Spreadsheets.Values.Get(spreadsheetID, sheet).
		ValueRenderOption(unformattedValue).
		DateTimeRenderOption(formattedString).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	return response.Values, nil
}
