package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"conectapro/shared/failure"
	"conectapro/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	ServiceID string        `json:"service_id"     validate:"required"`
	Date      string        `json:"scheduled_date" validate:"required,date"`
	Range     timeRangeForm `json:"scheduled_time_range"`
	Rating    int           `json:"service_rating" validate:"gte=1,lte=5"`
	Mode      string        `json:"mode"           validate:"omitempty,oneof=CASH CARD_SIMULATED"`
}

type timeRangeForm struct {
	Start string `json:"start" validate:"required,timeofday"`
	End   string `json:"end"   validate:"required,timeofday"`
}

func validForm() bookingForm {
	return bookingForm{
		ServiceID: "svc-1",
		Date:      "2026-11-02",
		Range:     timeRangeForm{Start: "09:00", End: "11:30"},
		Rating:    5,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *bookingForm)
		wantErr string
	}{
		{
			name:   "valid form",
			mutate: func(*bookingForm) {},
		},
		{
			name:    "missing service",
			mutate:  func(f *bookingForm) { f.ServiceID = "" },
			wantErr: "service_id is required",
		},
		{
			name:    "date with wrong layout",
			mutate:  func(f *bookingForm) { f.Date = "02/11/2026" },
			wantErr: "scheduled_date must be a date formatted as YYYY-MM-DD",
		},
		{
			name:    "impossible date",
			mutate:  func(f *bookingForm) { f.Date = "2026-02-30" },
			wantErr: "scheduled_date must be a date formatted as YYYY-MM-DD",
		},
		{
			name:    "time of day out of range",
			mutate:  func(f *bookingForm) { f.Range.End = "25:00" },
			wantErr: "end must be a time formatted as HH:mm",
		},
		{
			name:    "rating above five",
			mutate:  func(f *bookingForm) { f.Rating = 6 },
			wantErr: "service_rating must be less than or equal to 5",
		},
		{
			name:    "unknown mode",
			mutate:  func(f *bookingForm) { f.Mode = "BITCOIN" },
			wantErr: "mode must be one of CASH CARD_SIMULATED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, failure.Is(err, failure.KindValidation))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", wantErr: true},
		{name: "valid date", field: "2026-01-31", tag: "date"},
		{name: "invalid date", field: "2026-1-31", tag: "date", wantErr: true},
		{name: "valid time of day", field: "23:59", tag: "timeofday"},
		{name: "invalid time of day", field: "7pm", tag: "timeofday", wantErr: true},
		{name: "number in range", field: 3, tag: "gte=1,lte=5"},
		{name: "number out of range", field: 0, tag: "gte=1,lte=5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"service_id":"svc-1","scheduled_date":"2026-11-02","scheduled_time_range":{"start":"09:00","end":"10:00"},"service_rating":4}`,
		},
		{
			name:     "invalid field",
			jsonBody: `{"service_id":"svc-1","scheduled_date":"tomorrow","scheduled_time_range":{"start":"09:00","end":"10:00"},"service_rating":4}`,
			wantErr:  true,
		},
		{
			name:     "malformed body",
			jsonBody: `{"service_id":}`,
			wantErr:  true,
		},
		{
			name:     "empty body",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindValidation, failure.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type imageForm struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestUploadValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "foto",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     size,
		}
	}

	assert.NoError(t, validator.ValidateStruct(&imageForm{Image: header("image/png", 512)}))
	assert.Error(t, validator.ValidateStruct(&imageForm{Image: header("image/gif", 512)}))
	assert.Error(t, validator.ValidateStruct(&imageForm{Image: header("image/jpeg", 2<<20)}))
	assert.Error(t, validator.ValidateStruct(&imageForm{}))
}

func TestDataURIValidation(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		tag     string
		wantErr bool
	}{
		{name: "allowed type", field: "data:image/png;base64,iVBORw0K", tag: "mimetypes=image/png image/jpeg"},
		{name: "disallowed type", field: "data:application/pdf;base64,JVBE", tag: "mimetypes=image/png image/jpeg", wantErr: true},
		{name: "missing prefix", field: "image/png;base64,iVBORw0K", tag: "mimetypes=image/png", wantErr: true},
		{name: "missing type", field: "data:;base64,iVBORw0K", tag: "mimetypes=image/png", wantErr: true},
		{name: "not base64", field: "data:image/png,raw", tag: "mimetypes=image/png", wantErr: true},
		{name: "small payload", field: "data:image/png;base64,iVBORw0K", tag: "maxfilesize=1"},
		{name: "oversized payload", field: "data:image/png;base64," + strings.Repeat("A", 2<<20), tag: "maxfilesize=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
