package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PrayerState is the recorded state of a single prayer slot.
type PrayerState string

const (
	NotPrayed PrayerState = "not_prayed"
	Prayed    PrayerState = "prayed"
	Missed    PrayerState = "missed"
)

// PrayersPerDay is the number of slots in a daily record.
const PrayersPerDay = 5

// PrayerNames lists the daily slots in the order they are stored and reported.
var PrayerNames = [PrayersPerDay]string{"fajr", "dhuhr", "asr", "maghrib", "isha"}

func (s PrayerState) Valid() bool {
	switch s {
	case NotPrayed, Prayed, Missed:
		return true
	}
	return false
}

type Prayers struct {
	Fajr    PrayerState `json:"fajr"`
	Dhuhr   PrayerState `json:"dhuhr"`
	Asr     PrayerState `json:"asr"`
	Maghrib PrayerState `json:"maghrib"`
	Isha    PrayerState `json:"isha"`
}

// PrayersUpdate is a submitted daily record. A nil slot was omitted by the client.
type PrayersUpdate struct {
	Fajr    *PrayerState `json:"fajr"`
	Dhuhr   *PrayerState `json:"dhuhr"`
	Asr     *PrayerState `json:"asr"`
	Maghrib *PrayerState `json:"maghrib"`
	Isha    *PrayerState `json:"isha"`
}

// UpdateOf turns a full record into an update with every slot present.
func UpdateOf(p Prayers) PrayersUpdate {
	return PrayersUpdate{Fajr: &p.Fajr, Dhuhr: &p.Dhuhr, Asr: &p.Asr, Maghrib: &p.Maghrib, Isha: &p.Isha}
}

// DefaultPrayers is the record shown for a day nothing was recorded for.
func DefaultPrayers() Prayers {
	return Prayers{
		Fajr:    NotPrayed,
		Dhuhr:   NotPrayed,
		Asr:     NotPrayed,
		Maghrib: NotPrayed,
		Isha:    NotPrayed,
	}
}

// States returns the slot values in PrayerNames order.
func (p Prayers) States() [PrayersPerDay]PrayerState {
	return [PrayersPerDay]PrayerState{p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha}
}

type PrayerRecord struct {
	UserID    uuid.UUID `json:"-"`
	Date      string    `json:"date"`
	Prayers   Prayers   `json:"prayers"`
	UpdatedAt time.Time `json:"-"`
}

type DailyStats struct {
	Date       string  `json:"date"`
	Prayed     int     `json:"prayed"`
	Missed     int     `json:"missed"`
	NotPrayed  int     `json:"notPrayed"`
	Completion float64 `json:"completion"`
}

type Statistics struct {
	TotalPrayed          int          `json:"totalPrayed"`
	TotalMissed          int          `json:"totalMissed"`
	TotalNotPrayed       int          `json:"totalNotPrayed"`
	TotalDays            int          `json:"totalDays"`
	CompletionPercentage float64      `json:"completionPercentage"`
	DailyBreakdown       []DailyStats `json:"dailyBreakdown"`
}

type PrayerTimes struct {
	Date     string `json:"date"`
	Fajr     string `json:"fajr"`
	Dhuhr    string `json:"dhuhr"`
	Asr      string `json:"asr"`
	Maghrib  string `json:"maghrib"`
	Isha     string `json:"isha"`
	Fallback bool   `json:"fallback,omitempty"`
}
