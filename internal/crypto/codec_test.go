package crypto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceCredential = MasterCredential{Password: "*fg*=TY%m2Y~:dQq", Key: 2466}

func newTestCodec(t *testing.T, cred MasterCredential) *Codec {
	t.Helper()

	codec, err := NewCodec(cred)
	require.NoError(t, err)

	return codec
}

func TestNewCodec_InvalidCredential(t *testing.T) {
	_, err := NewCodec(MasterCredential{Password: "", Key: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewCodec(MasterCredential{Password: "pwd", Key: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCodec_EncryptGoldenVectors(t *testing.T) {
	codec := newTestCodec(t, referenceCredential)

	tests := []struct {
		plaintext string
		want      string
	}{
		{plaintext: "secretA", want: "F30dLL9HlS6S0/NLLmbhMQ=="},
		{plaintext: "secretB", want: "0CXKBzrfLajejjDD3ejLyg=="},
		{plaintext: "", want: "bYeD8XFjwFYKSCugePM2pg=="},
		{plaintext: "héllo wörld, 16+ bytes long", want: "y37mEFh/K5KhvQqm4onLCUIUFoAkvCWGQDPfbD2PSd4="},
	}

	for _, tt := range tests {
		t.Run(tt.plaintext, func(t *testing.T) {
			got, err := codec.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			plain, err := codec.Decrypt(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, plain)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	creds := []MasterCredential{
		referenceCredential,
		{Password: "3[[7W*Zj$T", Key: 659},
		{Password: "eO!)T>6h`c}l", Key: 0},
	}
	plaintexts := []string{"a", "exactly16bytes!!", "пароль", "with\nnewline and emoji 🔑", "0123456789abcdef0123456789abcdef"}

	for _, cred := range creds {
		codec := newTestCodec(t, cred)
		for _, p := range plaintexts {
			ciphertext, err := codec.Encrypt(p)
			require.NoError(t, err)

			got, err := codec.Decrypt(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	}
}

func TestCodec_EncryptIsDeterministic(t *testing.T) {
	codec := newTestCodec(t, referenceCredential)

	c1, err := codec.Encrypt("same input")
	require.NoError(t, err)
	c2, err := codec.Encrypt("same input")
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
}

func TestCodec_EncryptRejectsInvalidUTF8(t *testing.T) {
	codec := newTestCodec(t, referenceCredential)

	_, err := codec.Encrypt(string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCodec_DecryptWithWrongKey(t *testing.T) {
	wrong := []MasterCredential{
		{Password: "3[[7W*Zj$T", Key: 659},
		{Password: ".$4twd?iw>=q[p:d<#n!?<7!@]';9!", Key: 13392},
		{Password: "eO!)T>6h`c}l", Key: 0},
		{Password: "a", Key: 1},
	}

	for _, cred := range wrong {
		codec := newTestCodec(t, cred)
		for _, ciphertext := range []string{"F30dLL9HlS6S0/NLLmbhMQ==", "0CXKBzrfLajejjDD3ejLyg=="} {
			_, err := codec.Decrypt(ciphertext)
			assert.ErrorIs(t, err, ErrDecryption, "password %q", cred.Password)
		}
	}
}

func TestCodec_DecryptMalformed(t *testing.T) {
	codec := newTestCodec(t, referenceCredential)

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "empty", ciphertext: ""},
		{name: "not base64", ciphertext: "not base64!"},
		{name: "url alphabet", ciphertext: "F30dLL9HlS6S0_NLLmbhMQ=="},
		{name: "missing padding", ciphertext: "F30dLL9HlS6S0/NLLmbhMQ"},
		{name: "partial block", ciphertext: "AAAA"},
		{name: "one and a half blocks", ciphertext: "F30dLL9HlS6S0/NLLmbhMUFBQUFBQUE="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.ciphertext)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestCodec_ConcurrentUse(t *testing.T) {
	codec := newTestCodec(t, referenceCredential)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			got, err := codec.Decrypt("F30dLL9HlS6S0/NLLmbhMQ==")
			assert.NoError(t, err)
			assert.Equal(t, "secretA", got)
		}()
	}
	wg.Wait()
}

func TestUnpadPKCS7(t *testing.T) {
	block := func(tail ...byte) []byte {
		b := make([]byte, 16-len(tail))
		return append(b, tail...)
	}

	tests := []struct {
		name    string
		src     []byte
		wantLen int
		wantErr bool
	}{
		{name: "single byte", src: block(1), wantLen: 15},
		{name: "full block", src: block(16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16), wantLen: 0},
		{name: "zero", src: block(0), wantErr: true},
		{name: "too large", src: block(17), wantErr: true},
		{name: "inconsistent", src: block(2, 3, 3), wantErr: true},
		{name: "empty", src: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unpadPKCS7(tt.src, 16)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
