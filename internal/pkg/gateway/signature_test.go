package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignPayment(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("s3cr3t"))
	mac.Write([]byte("order_1|pay_1"))
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, SignPayment("order_1", "pay_1", "s3cr3t"))
}

func TestVerifyPaymentSignature(t *testing.T) {
	sig := SignPayment("order_1", "pay_1", "s3cr3t")

	t.Run("accepts a matching signature", func(t *testing.T) {
		assert.True(t, VerifyPaymentSignature("order_1", "pay_1", sig, "s3cr3t"))
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		tampered := "0" + sig[1:]
		if tampered == sig {
			tampered = "1" + sig[1:]
		}
		assert.False(t, VerifyPaymentSignature("order_1", "pay_1", tampered, "s3cr3t"))
	})

	t.Run("rejects a signature for different fields", func(t *testing.T) {
		assert.False(t, VerifyPaymentSignature("order_2", "pay_1", sig, "s3cr3t"))
		assert.False(t, VerifyPaymentSignature("order_1", "pay_2", sig, "s3cr3t"))
	})

	t.Run("rejects a signature computed with another key", func(t *testing.T) {
		other := SignPayment("order_1", "pay_1", "wrong-key")
		assert.False(t, VerifyPaymentSignature("order_1", "pay_1", other, "s3cr3t"))
	})

	t.Run("rejects empty and truncated signatures", func(t *testing.T) {
		assert.False(t, VerifyPaymentSignature("order_1", "pay_1", "", "s3cr3t"))
		assert.False(t, VerifyPaymentSignature("order_1", "pay_1", sig[:10], "s3cr3t"))
	})

	t.Run("field shuffles with identical concatenation do not collide", func(t *testing.T) {
		// "ab|c" vs "a|bc" must produce different MACs because of the
		// fixed separator position.
		assert.NotEqual(t, SignPayment("ab", "c", "s3cr3t"), SignPayment("a", "bc", "s3cr3t"))
	})
}
