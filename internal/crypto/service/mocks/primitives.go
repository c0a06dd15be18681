// Package mocks provides mock implementations of the crypto service interfaces.
package mocks

import (
	"crypto/rsa"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPrimitives is a mock implementation of service.Primitives.
type MockPrimitives struct {
	mock.Mock
}

func bytesOrNil(args mock.Arguments) ([]byte, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// RandomBytes mocks the RandomBytes method.
func (m *MockPrimitives) RandomBytes(n int) ([]byte, error) {
	return bytesOrNil(m.Called(n))
}

// RSAEncrypt mocks the RSAEncrypt method.
func (m *MockPrimitives) RSAEncrypt(data []byte, pub *rsa.PublicKey) ([]byte, error) {
	return bytesOrNil(m.Called(data, pub))
}

// RSADecrypt mocks the RSADecrypt method.
func (m *MockPrimitives) RSADecrypt(data []byte, priv *rsa.PrivateKey) ([]byte, error) {
	return bytesOrNil(m.Called(data, priv))
}

// AESCBCEncrypt mocks the AESCBCEncrypt method.
func (m *MockPrimitives) AESCBCEncrypt(data, key, iv []byte) ([]byte, error) {
	return bytesOrNil(m.Called(data, key, iv))
}

// AESCBCDecrypt mocks the AESCBCDecrypt method.
func (m *MockPrimitives) AESCBCDecrypt(data, key, iv []byte) ([]byte, error) {
	return bytesOrNil(m.Called(data, key, iv))
}

// HMACSHA512 mocks the HMACSHA512 method.
func (m *MockPrimitives) HMACSHA512(data, key []byte) ([]byte, error) {
	return bytesOrNil(m.Called(data, key))
}

// UUID mocks the UUID method.
func (m *MockPrimitives) UUID() (uuid.UUID, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}
