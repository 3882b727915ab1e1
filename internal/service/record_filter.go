package service

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FilterRecords 对结果集做大小写不敏感的子串匹配
// 任一字段的字符串形式包含检索词即视为命中；空检索词匹配全部
// 线性扫描，适用于管理后台量级的数据
func FilterRecords[T any](records []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	matched := make([]T, 0, len(records))
	for _, record := range records {
		if recordMatches(reflect.ValueOf(record), term) {
			matched = append(matched, record)
		}
	}
	return matched
}

func recordMatches(v reflect.Value, term string) bool {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return strings.Contains(strings.ToLower(stringifyValue(v)), term)
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if fieldContains(v.Field(i), term) {
			return true
		}
	}
	return false
}

func fieldContains(field reflect.Value, term string) bool {
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	switch field.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < field.Len(); i++ {
			if fieldContains(field.Index(i), term) {
				return true
			}
		}
		return false
	case reflect.Struct:
		// 时间等叶子类型按字符串处理，嵌套结构逐字段下钻
		if _, ok := field.Interface().(time.Time); ok {
			return strings.Contains(strings.ToLower(stringifyValue(field)), term)
		}
		if field.Type().Implements(reflect.TypeOf((*fmt.Stringer)(nil)).Elem()) {
			return strings.Contains(strings.ToLower(stringifyValue(field)), term)
		}
		return recordMatches(field, term)
	default:
		return strings.Contains(strings.ToLower(stringifyValue(field)), term)
	}
}

func stringifyValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		if t, ok := v.Interface().(time.Time); ok {
			return t.Format(time.RFC3339)
		}
	}
	return fmt.Sprintf("%v", v.Interface())
}
