package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestIsDup(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	if !IsDup(dup) {
		t.Error("code 11000 not reported as duplicate")
	}

	other := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121}}}
	if IsDup(other) {
		t.Error("code 121 reported as duplicate")
	}

	if IsDup(errors.New("connection reset")) {
		t.Error("plain error reported as duplicate")
	}
	if IsDup(nil) {
		t.Error("nil reported as duplicate")
	}
}
