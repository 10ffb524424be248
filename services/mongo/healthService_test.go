package mongo

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_app/services"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type fakePinger struct {
	err      error
	readPref *readpref.ReadPref
}

func (p *fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	p.readPref = rp
	return p.err
}

func Test_CheckDatabase__should_return_nil_when_ping_succeeds(t *testing.T) {
	client := &fakePinger{}
	hService := &mongoHealthService{logger: zap.NewNop(), client: client}

	err := hService.CheckDatabase(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, readpref.Primary(), client.readPref)
}

func Test_CheckDatabase__should_return_ErrDatabaseUnavailable_when_ping_fails(t *testing.T) {
	hService := &mongoHealthService{logger: zap.NewNop(), client: &fakePinger{err: errors.New("connection refused")}}

	err := hService.CheckDatabase(context.Background())

	assert.Error(t, err)
	assert.Equal(t, services.ErrDatabaseUnavailable, pkgerrors.Cause(err))
	assert.Contains(t, err.Error(), "connection refused")
}
