package v1handler

import (
	"io"
	"net/http"
	"strconv"
	"studytracker/pkg/serrors"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, enc func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	enc(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody reads a JSON object from the request body and calls fn for each
// field. Malformed bodies are reported as bad requests.
func decodeBody(w http.ResponseWriter, r *http.Request, fn func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read body")
	}
	if len(body) == 0 {
		return serrors.BadRequest("request body is required")
	}

	if err := jx.DecodeBytes(body).Obj(fn); err != nil {
		var se *serrors.Error
		if errors.As(err, &se) {
			return se
		}

		return serrors.BadRequest("invalid request body: %s", err.Error())
	}

	return nil
}

// fieldErr annotates a decode error with the field name; nil stays nil.
func fieldErr(key string, err error) error {
	if err == nil {
		return nil
	}

	return errors.Wrapf(err, "field %q", key)
}

func isNull(d *jx.Decoder) bool {
	return d.Next() == jx.Null
}

func decodeStringPtr(d *jx.Decoder) (*string, error) {
	if isNull(d) {
		return nil, d.Null()
	}

	s, err := d.Str()
	if err != nil {
		return nil, errors.Wrap(err, "decode string")
	}

	return &s, nil
}

func decodeIntPtr(d *jx.Decoder) (*int, error) {
	if isNull(d) {
		return nil, d.Null()
	}

	v, err := d.Int()
	if err != nil {
		return nil, errors.Wrap(err, "decode int")
	}

	return &v, nil
}

func decodeBoolPtr(d *jx.Decoder) (*bool, error) {
	if isNull(d) {
		return nil, d.Null()
	}

	v, err := d.Bool()
	if err != nil {
		return nil, errors.Wrap(err, "decode bool")
	}

	return &v, nil
}

func decodeTimePtr(d *jx.Decoder) (*time.Time, error) {
	s, err := decodeStringPtr(d)
	if err != nil || s == nil {
		return nil, err
	}

	t, err := parseTime(*s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func decodeUUIDPtr(d *jx.Decoder) (*uuid.UUID, error) {
	s, err := decodeStringPtr(d)
	if err != nil || s == nil {
		return nil, err
	}

	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, serrors.BadRequest("invalid id %q", *s)
	}

	return &id, nil
}

// parseTime accepts RFC 3339 timestamps and plain dates.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Time{}, serrors.BadRequest("invalid time %q: expected RFC 3339", s)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serrors.BadRequest("invalid id %q", raw)
	}

	return id, nil
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, serrors.BadRequest("invalid %s %q", name, raw)
	}

	return &id, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, serrors.BadRequest("invalid %s %q", name, raw)
	}

	return &v, nil
}

func queryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	return parseTime(raw)
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeTimePtr(e *jx.Encoder, t *time.Time) {
	if t == nil {
		e.Null()

		return
	}
	encodeTime(e, *t)
}

func encodeIntPtr(e *jx.Encoder, v *int) {
	if v == nil {
		e.Null()

		return
	}
	e.Int(*v)
}

func encodeOptString(e *jx.Encoder, s string) {
	if s == "" {
		e.Null()

		return
	}
	e.Str(s)
}
