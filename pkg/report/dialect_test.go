package report

import "testing"

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   Dialect
	}{
		{
			name:   "aws header",
			header: []string{"ACCOUNT_UID", "CHECK_TITLE", "SEVERITY", "REGION", "STATUS"},
			want:   DialectAWS,
		},
		{
			name:   "azure header",
			header: []string{"SUBSCRIPTIONID", "REQUIREMENTS_DESCRIPTION", "LOCATION", "STATUS"},
			want:   DialectAzure,
		},
		{
			// A LOCATION column alone must not flip an AWS report to Azure.
			name:   "aws header with coincidental LOCATION column",
			header: []string{"ACCOUNT_UID", "CHECK_TITLE", "SEVERITY", "REGION", "LOCATION", "STATUS"},
			want:   DialectAWS,
		},
		{
			name:   "both discriminators prefers aws",
			header: []string{"ACCOUNT_UID", "SUBSCRIPTIONID", "STATUS"},
			want:   DialectAWS,
		},
		{
			name:   "no discriminator",
			header: []string{"CHECK_TITLE", "SEVERITY", "STATUS"},
			want:   DialectUnknown,
		},
		{
			name:   "empty header",
			header: nil,
			want:   DialectUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bindings := DetectDialect(tt.header)
			if got != tt.want {
				t.Fatalf("DetectDialect() = %v, want %v", got, tt.want)
			}
			switch got {
			case DialectAWS:
				if bindings.Account != "ACCOUNT_UID" || bindings.Title != "CHECK_TITLE" || bindings.Region != "REGION" {
					t.Errorf("unexpected AWS bindings: %+v", bindings)
				}
			case DialectAzure:
				if bindings.Account != "SUBSCRIPTIONID" || bindings.Title != "REQUIREMENTS_DESCRIPTION" || bindings.Region != "LOCATION" {
					t.Errorf("unexpected Azure bindings: %+v", bindings)
				}
			}
		})
	}
}

func TestDialectString(t *testing.T) {
	if DialectAWS.String() != "AWS" || DialectAzure.String() != "Azure" || DialectUnknown.String() != "Unknown" {
		t.Errorf("unexpected dialect names: %s %s %s", DialectAWS, DialectAzure, DialectUnknown)
	}
}
