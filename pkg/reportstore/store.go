package reportstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vtree/pkg/report"
)

// Store persists encoded reports under generated ids so that a failed
// validation can be replayed later with Tree.Import.
type Store interface {
	// Save stores enc and returns its id.
	Save(ctx context.Context, enc report.Encoded) (string, error)
	// Load returns the report in the encoding it was saved with.
	Load(ctx context.Context, id string) (report.Encoded, error)
	// Delete removes a report. Missing ids are not an error.
	Delete(ctx context.Context, id string) error
}

// record is the stored form: the encoding tag next to the encoded report.
type record struct {
	Type   report.Type     `json:"type"`
	Report json.RawMessage `json:"report"`
}

func marshal(enc report.Encoded) ([]byte, error) {
	if enc == nil {
		return nil, ErrNilReport
	}
	body, err := json.Marshal(enc)
	if err != nil {
		return nil, errors.Join(ErrEncodeReport, err)
	}
	data, err := json.Marshal(record{Type: enc.Type(), Report: body})
	if err != nil {
		return nil, errors.Join(ErrEncodeReport, err)
	}
	return data, nil
}

func unmarshal(data []byte) (report.Encoded, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(ErrDecodeReport, err)
	}
	enc, err := report.Decode(rec.Report, rec.Type)
	if err != nil {
		return nil, errors.Join(ErrDecodeReport, err)
	}
	return enc, nil
}

func newID() string {
	return uuid.NewString()
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Join(ErrInvalidID, err)
	}
	return nil
}
