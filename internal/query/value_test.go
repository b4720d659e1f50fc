package query

import (
	"testing"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		wantKind ValueKind
		wantNum  float64
		wantUnit string
		wantErr  bool
	}{
		{name: "integer", literal: "42", wantKind: ValueNumber, wantNum: 42},
		{name: "decimal", literal: "1.5", wantKind: ValueNumber, wantNum: 1.5},
		{name: "negative", literal: "-7", wantKind: ValueNumber, wantNum: -7},
		{name: "bytes", literal: "512b", wantKind: ValueSized, wantNum: 512, wantUnit: "b"},
		{name: "megabytes", literal: "10mb", wantKind: ValueSized, wantNum: 10, wantUnit: "mb"},
		{name: "uppercase unit", literal: "2GB", wantKind: ValueSized, wantNum: 2, wantUnit: "gb"},
		{name: "decimal size", literal: "1.5kb", wantKind: ValueSized, wantNum: 1.5, wantUnit: "kb"},
		{name: "unknown unit accepted", literal: "10xy", wantKind: ValueSized, wantNum: 10, wantUnit: "xy"},
		{name: "double decimal point", literal: "1.2.3", wantErr: true},
		{name: "no digits", literal: "mb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseNumeric(tt.literal)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNumeric() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", v.Kind, tt.wantKind)
			}
			if v.Num != tt.wantNum {
				t.Errorf("Num = %v, want %v", v.Num, tt.wantNum)
			}
			if v.Unit != tt.wantUnit {
				t.Errorf("Unit = %q, want %q", v.Unit, tt.wantUnit)
			}
		})
	}
}

func TestValue_Bytes(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{name: "plain number", value: NumberValue(100), want: 100, wantOK: true},
		{name: "bytes", value: Value{Kind: ValueSized, Num: 5, Unit: "b"}, want: 5, wantOK: true},
		{name: "kilobytes", value: Value{Kind: ValueSized, Num: 2, Unit: "kb"}, want: 2048, wantOK: true},
		{name: "megabytes", value: Value{Kind: ValueSized, Num: 10, Unit: "mb"}, want: 10 * 1024 * 1024, wantOK: true},
		{name: "gigabytes", value: Value{Kind: ValueSized, Num: 1, Unit: "gb"}, want: 1024 * 1024 * 1024, wantOK: true},
		{name: "terabytes", value: Value{Kind: ValueSized, Num: 1, Unit: "tb"}, want: 1024 * 1024 * 1024 * 1024, wantOK: true},
		{name: "unknown unit", value: Value{Kind: ValueSized, Num: 10, Unit: "xy"}, wantOK: false},
		{name: "string is not a size", value: StringValue("10mb"), wantOK: false},
		{name: "bool is not a size", value: BoolValue(true), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Bytes()
			if ok != tt.wantOK {
				t.Fatalf("Bytes() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}
}
