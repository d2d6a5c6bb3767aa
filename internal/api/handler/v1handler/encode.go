package v1handler

import (
	"net/http"
	"shifts/internal/eligibility"
	"shifts/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// timeLayout renders instants in UTC with millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Encode writes the error as {"code","message"}.
func (e Error) Encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("code", func(enc *jx.Encoder) { enc.Str(e.Code) })
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(e.Message) })
	})
}

func encodeTime(enc *jx.Encoder, t time.Time) {
	enc.Str(t.UTC().Format(timeLayout))
}

func encodeShift(enc *jx.Encoder, s domain.Shift) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("id", func(enc *jx.Encoder) { enc.Int64(int64(s.ID)) })
		enc.Field("start", func(enc *jx.Encoder) { encodeTime(enc, s.Start) })
		enc.Field("end", func(enc *jx.Encoder) { encodeTime(enc, s.End) })
		enc.Field("profession", func(enc *jx.Encoder) { enc.Str(string(s.Profession)) })
		enc.Field("facilityId", func(enc *jx.Encoder) { enc.Int64(int64(s.FacilityID)) })
		enc.Field("workerId", func(enc *jx.Encoder) {
			if s.WorkerID == nil {
				enc.Null()

				return
			}
			enc.Int64(int64(*s.WorkerID))
		})
		enc.Field("isDeleted", func(enc *jx.Encoder) { enc.Bool(s.IsDeleted) })
	})
}

func encodeBucket(enc *jx.Encoder, b domain.ShiftBucket) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("start", func(enc *jx.Encoder) { enc.Str(b.Start) })
		enc.Field("end", func(enc *jx.Encoder) { enc.Str(b.End) })
		enc.Field("shifts", func(enc *jx.Encoder) {
			enc.Arr(func(enc *jx.Encoder) {
				for _, s := range b.Shifts {
					encodeShift(enc, s)
				}
			})
		})
	})
}

func encodeShifts(enc *jx.Encoder, res eligibility.Shifts) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("data", func(enc *jx.Encoder) {
			enc.Arr(func(enc *jx.Encoder) {
				for _, b := range res.Data {
					encodeBucket(enc, b)
				}
			})
		})
		enc.Field("totalCount", func(enc *jx.Encoder) { enc.Int64(res.TotalCount) })
		enc.Field("pageNumber", func(enc *jx.Encoder) { enc.Int(res.PageNumber) })
		enc.Field("totalPages", func(enc *jx.Encoder) { enc.Int64(res.TotalPages) })
		enc.Field("nextPage", func(enc *jx.Encoder) { enc.Int(res.NextPage) })
	})
}

// writeJSON writes the encoded body with the given status code.
func writeJSON(w http.ResponseWriter, status int, encode func(enc *jx.Encoder)) error {
	enc := jx.GetEncoder()
	defer jx.PutEncoder(enc)
	encode(enc)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(enc.Bytes()); err != nil {
		return errors.Wrap(err, "write response")
	}

	return nil
}
