package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ServiceType is the movement kind of an order. The zero value means the
// service has not been chosen yet.
type ServiceType int

const (
	ServiceUnset            ServiceType = 0
	ServiceReloadCarCar     ServiceType = 1
	ServiceReloadCarTermCar ServiceType = 2
	ServiceIntoPlukkStorage ServiceType = 3
)

func (s ServiceType) Known() bool {
	return s >= ServiceReloadCarCar && s <= ServiceIntoPlukkStorage
}

func (s ServiceType) String() string {
	switch s {
	case ServiceReloadCarCar:
		return "Reload Car-Car"
	case ServiceReloadCarTermCar:
		return "Reload Car-Terminal-Car"
	case ServiceIntoPlukkStorage:
		return "Into Plukk Storage"
	}
	return ""
}

func (s ServiceType) ShortName() string {
	switch s {
	case ServiceReloadCarCar:
		return "C-C"
	case ServiceReloadCarTermCar:
		return "C-T-C"
	case ServiceIntoPlukkStorage:
		return "Plukk"
	}
	return ""
}

// Commodity is the cargo category of an order.
type Commodity string

const (
	CommodityOther      Commodity = "other"
	CommodityScrimp     Commodity = "scrimp"
	CommoditySalmon     Commodity = "salmon"
	CommodityTrouth     Commodity = "trouth"
	CommodityBacalao    Commodity = "bacalao"
	CommodityDryfish    Commodity = "dryfish"
	CommodityWhitefish  Commodity = "whitefish"
	CommoditySalmonMix  Commodity = "salmon_mix"
	CommoditySalmonProd Commodity = "salmon_prod"
)

// ProcessStatus tracks the handling state of an order at the terminal.
type ProcessStatus int

const (
	StatusNone    ProcessStatus = 0
	StatusRunning ProcessStatus = 1
	StatusFailed  ProcessStatus = 2
	StatusDone    ProcessStatus = 5
)

const DateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component. The wire format
// is "YYYY-MM-DD".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time   { return d.t }
func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) String() string    { return d.t.Format(DateLayout) }
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Order is a planned movement of cargo through a terminal. A reference is
// unique within its terminal; that rule is enforced asynchronously by the
// validation layer, not transactionally.
type Order struct {
	ID        string      `json:"id"`
	Reference string      `json:"reference"`
	Service   ServiceType `json:"service"`
	Commodity Commodity   `json:"commodity,omitempty"`

	EtaDate *Date  `json:"eta_date,omitempty"`
	EtaTime string `json:"eta_time,omitempty"`
	EtdDate *Date  `json:"etd_date,omitempty"`
	EtdTime string `json:"etd_time,omitempty"`

	EtaDriverID    string `json:"eta_driver_id,omitempty"`
	EtaTruckID     string `json:"eta_truck_id,omitempty"`
	EtaTrailerID   string `json:"eta_trailer_id,omitempty"`
	EtaDriver      string `json:"eta_driver,omitempty"`
	EtaDriverPhone string `json:"eta_driver_phone,omitempty"`
	EtaTruck       string `json:"eta_truck,omitempty"`
	EtaTrailer     string `json:"eta_trailer,omitempty"`

	EtdDriverID    string `json:"etd_driver_id,omitempty"`
	EtdTruckID     string `json:"etd_truck_id,omitempty"`
	EtdTrailerID   string `json:"etd_trailer_id,omitempty"`
	EtdDriver      string `json:"etd_driver,omitempty"`
	EtdDriverPhone string `json:"etd_driver_phone,omitempty"`
	EtdTruck       string `json:"etd_truck,omitempty"`
	EtdTrailer     string `json:"etd_trailer,omitempty"`

	Pallets int     `json:"pallets,omitempty"`
	Boxes   int     `json:"boxes,omitempty"`
	Kilos   float64 `json:"kilos,omitempty"`
	Notes   string  `json:"notes,omitempty"`

	Priority   bool          `json:"priority"`
	InTerminal bool          `json:"in_terminal"`
	Status     ProcessStatus `json:"status"`

	TerminalID string `json:"terminal_id,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Terminal is a physical location orders move through.
type Terminal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name,omitempty"`
	AccountCode int    `json:"account_code,omitempty"`
	Address     string `json:"address,omitempty"`
	TimeZone    string `json:"time_zone,omitempty"`
}
