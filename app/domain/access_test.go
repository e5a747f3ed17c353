package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeVerifier matches when the presented secret equals the stored hash
// prefixed with "hash:". Keeps gate tests independent of bcrypt cost.
type fakeVerifier struct {
	calls int
}

func (f *fakeVerifier) Verify(secret, storedHash string) bool {
	f.calls++
	return storedHash == "hash:"+secret
}

func strPtr(s string) *string { return &s }

func testTrip(isPublic bool, tokenHash *string) *Trip {
	return &Trip{
		ID:              uuid.New(),
		Slug:            "paris-2024",
		Title:           "Paris",
		IsPublic:        isPublic,
		AccessTokenHash: tokenHash,
	}
}

func TestDecideAccess(t *testing.T) {
	tests := []struct {
		name          string
		trip          *Trip
		token         string
		callerIsAdmin bool
		want          Verdict
		wantVerifyRun bool
	}{
		{
			name: "public trip grants without token",
			trip: testTrip(true, nil),
			want: VerdictGranted,
		},
		{
			name:  "public trip grants regardless of wrong token",
			trip:  testTrip(true, strPtr("hash:right")),
			token: "wrong",
			want:  VerdictGranted,
		},
		{
			name:  "private trip with valid token grants",
			trip:  testTrip(false, strPtr("hash:sunny-cat-42")),
			token: "sunny-cat-42",
			want:  VerdictGranted,
			wantVerifyRun: true,
		},
		{
			name:  "private trip with wrong token denies",
			trip:  testTrip(false, strPtr("hash:sunny-cat-42")),
			token: "wrong",
			want:  VerdictDeniedInvalidToken,
			wantVerifyRun: true,
		},
		{
			name: "private trip without token denies",
			trip: testTrip(false, strPtr("hash:sunny-cat-42")),
			want: VerdictDeniedNoToken,
		},
		{
			name:  "private trip with no stored hash is misconfigured",
			trip:  testTrip(false, nil),
			token: "anything",
			want:  VerdictDeniedMisconfigured,
		},
		{
			name:  "empty stored hash counts as misconfigured",
			trip:  testTrip(false, strPtr("")),
			token: "anything",
			want:  VerdictDeniedMisconfigured,
		},
		{
			name:          "admin bypasses private unconfigured trip",
			trip:          testTrip(false, nil),
			callerIsAdmin: true,
			want:          VerdictGranted,
		},
		{
			name:          "admin bypasses token verification entirely",
			trip:          testTrip(false, strPtr("hash:secret")),
			token:         "wrong",
			callerIsAdmin: true,
			want:          VerdictGranted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{}

			got := DecideAccess(tt.trip, tt.token, tt.callerIsAdmin, verifier)

			assert.Equal(t, tt.want, got)
			if tt.wantVerifyRun {
				assert.Equal(t, 1, verifier.calls, "verifier should run exactly once")
			} else {
				assert.Zero(t, verifier.calls, "verifier must not run on this path")
			}
			assert.Equal(t, tt.want == VerdictGranted, got.Granted())
		})
	}
}

func TestDecideAccess_Deterministic(t *testing.T) {
	trip := testTrip(false, strPtr("hash:secret"))
	verifier := &fakeVerifier{}

	first := DecideAccess(trip, "secret", false, verifier)
	second := DecideAccess(trip, "secret", false, verifier)

	assert.Equal(t, first, second)
	assert.Equal(t, VerdictGranted, first)
}
