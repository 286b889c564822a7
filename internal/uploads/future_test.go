// internal/uploads/future_test.go
package uploads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureStates(t *testing.T) {
	f := NewFuture()

	assert.False(t, f.Ready())
	assert.Empty(t, f.Ref())

	f.Complete("uploaded/id-proof.jpg")
	assert.True(t, f.Ready())
	assert.Equal(t, "uploaded/id-proof.jpg", f.Ref())
}

func TestFutureCompleteIsIdempotent(t *testing.T) {
	f := NewFuture()
	f.Complete("uploaded/first.jpg")
	f.Complete("uploaded/second.jpg")

	assert.Equal(t, "uploaded/first.jpg", f.Ref())
}

func TestUploaderCompletesAfterDelay(t *testing.T) {
	u := &Uploader{Delay: 10 * time.Millisecond}
	f := u.Start("work-proof.pdf")

	require.Eventually(t, f.Ready, time.Second, 5*time.Millisecond)
	assert.Equal(t, "uploaded/work-proof.pdf", f.Ref())
}
