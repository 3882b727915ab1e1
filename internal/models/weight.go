package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Weight 货物重量（千克，保留 3 位小数）
type Weight struct {
	decimal.Decimal
}

// NewWeightFromDecimal 从 decimal 创建重量
func NewWeightFromDecimal(value decimal.Decimal) Weight {
	return Weight{Decimal: value.Round(3)}
}

// MarshalJSON 统一输出 3 位小数的字符串
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Decimal.Round(3).StringFixed(3))
}

// UnmarshalJSON 解析重量（字符串或数字）
func (w *Weight) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		w.Decimal = d.Round(3)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	w.Decimal = decimal.NewFromFloat(f).Round(3)
	return nil
}

// Value 用于数据库写入
func (w Weight) Value() (driver.Value, error) {
	return w.Decimal.Round(3).Value()
}

// Scan 用于数据库读取
func (w *Weight) Scan(value interface{}) error {
	if err := w.Decimal.Scan(value); err != nil {
		return err
	}
	w.Decimal = w.Decimal.Round(3)
	return nil
}
