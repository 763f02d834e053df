package postgres

import "testing"

func TestStringIDToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:    "valid ID with prefix",
			input:   "u1",
			want:    1,
			wantErr: false,
		},
		{
			name:    "valid ID without prefix",
			input:   "1",
			want:    1,
			wantErr: false,
		},
		{
			name:    "valid ID with large number",
			input:   "u12345",
			want:    12345,
			wantErr: false,
		},
		{
			name:    "invalid ID - non-numeric",
			input:   "uabc",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - empty string",
			input:   "",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - only prefix",
			input:   "u",
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := stringIDToInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("stringIDToInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("stringIDToInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntToStringID(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{
			name:  "positive number",
			input: 1,
			want:  "u1",
		},
		{
			name:  "zero",
			input: 0,
			want:  "u0",
		},
		{
			name:  "large number",
			input: 12345,
			want:  "u12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := intToStringID(tt.input)
			if got != tt.want {
				t.Errorf("intToStringID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordStringIDToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:    "valid ID with prefix",
			input:   "tr-1001",
			want:    1001,
			wantErr: false,
		},
		{
			name:    "valid ID without prefix",
			input:   "1001",
			want:    1001,
			wantErr: false,
		},
		{
			name:    "invalid ID - non-numeric",
			input:   "tr-abc",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - empty string",
			input:   "",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - only prefix",
			input:   "tr-",
			want:    0,
			wantErr: true,
		},
		{
			name:    "wrong prefix - will fail to parse",
			input:   "u-1001",
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := recordStringIDToInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("recordStringIDToInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("recordStringIDToInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Тесты на обратную совместимость - проверяем, что преобразования обратимы
func TestIDConversionRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		userID    int
		recordID  int
		userStr   string
		recordStr string
	}{
		{
			name:    "round trip user ID",
			userID:  1,
			userStr: "u1",
		},
		{
			name:      "round trip record ID",
			recordID:  1001,
			recordStr: "tr-1001",
		},
		{
			name:      "round trip large numbers",
			userID:    99999,
			recordID:  123456,
			userStr:   "u99999",
			recordStr: "tr-123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.userID != 0 {
				str := intToStringID(tt.userID)
				if str != tt.userStr {
					t.Errorf("intToStringID(%d) = %v, want %v", tt.userID, str, tt.userStr)
				}

				back, err := stringIDToInt(str)
				if err != nil {
					t.Errorf("stringIDToInt(%v) error = %v", str, err)
					return
				}
				if back != tt.userID {
					t.Errorf("stringIDToInt(intToStringID(%d)) = %d, want %d", tt.userID, back, tt.userID)
				}
			}

			if tt.recordID != 0 {
				str := recordIntToStringID(tt.recordID)
				if str != tt.recordStr {
					t.Errorf("recordIntToStringID(%d) = %v, want %v", tt.recordID, str, tt.recordStr)
				}

				back, err := recordStringIDToInt(str)
				if err != nil {
					t.Errorf("recordStringIDToInt(%v) error = %v", str, err)
					return
				}
				if back != tt.recordID {
					t.Errorf("recordStringIDToInt(recordIntToStringID(%d)) = %d, want %d", tt.recordID, back, tt.recordID)
				}
			}
		})
	}
}
