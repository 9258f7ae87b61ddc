// file: internals/helpers/dbtime/day.go
package dbtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DayLayout dipakai untuk query param & response (YYYY-MM-DD).
const DayLayout = "2006-01-02"

// Nama locals yang bisa di-set middleware kalau organisasi punya offset sendiri.
const LocOrgLoc = "org_loc"

// ParseUTCOffset: "+05:45", "-03:00", "+07", "Z" → zona fixed.
// Sengaja tidak pakai tzdata (IANA); hari kerja dihitung dari offset tetap.
func ParseUTCOffset(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "z") || s == "+00:00" || s == "-00:00" {
		return time.FixedZone("UTC+00:00", 0), nil
	}

	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil, fmt.Errorf("utc offset %q harus diawali + atau -", s)
	}

	body := s[1:]
	hh, mm := body, "0"
	if i := strings.IndexByte(body, ':'); i >= 0 {
		hh, mm = body[:i], body[i+1:]
	} else if len(body) == 4 {
		hh, mm = body[:2], body[2:]
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 14 {
		return nil, fmt.Errorf("utc offset %q: jam tidak valid", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return nil, fmt.Errorf("utc offset %q: menit tidak valid", s)
	}

	secs := sign * (h*3600 + m*60)
	name := fmt.Sprintf("UTC%c%02d:%02d", s[0], h, m)
	return time.FixedZone(name, secs), nil
}

// DayKey: tanggal kalender lokal dari t, disimpan sebagai 00:00 UTC
// supaya cocok dengan kolom DATE di Postgres (tanpa geser zona).
func DayKey(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay: day key → "YYYY-MM-DD".
func FormatDay(day time.Time) string {
	if day.IsZero() {
		return ""
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(DayLayout)
}

// ParseDay: "YYYY-MM-DD" → day key. String kosong → nil.
func ParseDay(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetOrgLocation: zona dari locals (kalau middleware set), fallback ke def.
func GetOrgLocation(c *fiber.Ctx, def *time.Location) *time.Location {
	if c != nil {
		if loc, ok := c.Locals(LocOrgLoc).(*time.Location); ok && loc != nil {
			return loc
		}
	}
	if def != nil {
		return def
	}
	return time.UTC
}

// ToOrgTimePtr konversi timestamp (UTC dari DB) ke zona organisasi.
func ToOrgTimePtr(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}
