package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorEqual(t *testing.T) {
	assert.True(t, ErrorEqual(nil, nil))
	assert.False(t, ErrorEqual(ParamError, nil))
	assert.False(t, ErrorEqual(nil, ParamError))
	assert.True(t, ErrorEqual(ParamError, MissingField))
	assert.True(t, ErrorEqual(MissingField, PasswordTooShort))
	assert.False(t, ErrorEqual(EmailRegistered, InvalidCredentials))
}

func TestSetMsgKeepsCodeAndStatus(t *testing.T) {
	e := ParamError.SetMsg("custom")

	assert.Equal(t, ParamError.Code(), e.Code())
	assert.Equal(t, http.StatusBadRequest, e.Status())
	assert.Equal(t, "custom", e.Msg())
	assert.Equal(t, "param error", ParamError.Msg())
	assert.Equal(t, "10002:custom", e.Error())
}

func TestStoreFailuresHideDetail(t *testing.T) {
	for _, e := range []Error{StoreReadFailure, StoreWriteFailure, CorruptStore} {
		assert.Equal(t, http.StatusInternalServerError, e.Status())
		assert.Equal(t, ServerError.Msg(), e.Msg())
	}
}

func TestIsDuplicatedErr(t *testing.T) {
	assert.False(t, IsDuplicatedErr(nil))
	assert.False(t, IsDuplicatedErr(errors.New("boom")))
	assert.True(t, IsDuplicatedErr(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsDuplicatedErr(&mysql.MySQLError{Number: 1045}))
	assert.True(t, IsDuplicatedErr(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
}
