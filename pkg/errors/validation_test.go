package errors

import "testing"

func TestValidateSnapshotName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Simple", "lantern-v2", false},
		{"WithSlash", "scenes/lantern", false},
		{"Empty", "", true},
		{"Traversal", "../secrets", true},
		{"DoubleSlash", "a//b", true},
		{"Backslash", `a\b`, true},
		{"NullByte", "a\x00b", true},
		{"TooLong", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshotName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSnapshotName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtensionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Vendor", "VENDOR_texture_atlas", false},
		{"ShortPrefix", "KHR_lights", false},
		{"Empty", "", true},
		{"NoUnderscore", "VENDORlights", true},
		{"LowercasePrefix", "vendor_lights", true},
		{"LeadingUnderscore", "_lights", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtensionID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtensionID(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Relative", "assets/scene.json", false},
		{"Absolute", "/tmp/scene.json", false},
		{"Empty", "", true},
		{"Traversal", "../../etc/passwd", true},
		{"Control", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
