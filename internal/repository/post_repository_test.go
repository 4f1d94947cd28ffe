package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func stageOf(doc bson.D) string {
	if len(doc) == 0 {
		return ""
	}
	return doc[0].Key
}

func TestFeedPipelineShape(t *testing.T) {
	pipe := FeedPipeline("approved")

	if got := stageOf(pipe[0]); got != StageMatch {
		t.Fatalf("first stage = %s, want %s", got, StageMatch)
	}
	match := pipe[0][0].Value.(bson.M)
	if match["verify_status"] != "approved" {
		t.Errorf("match filters on %v, want verify_status=approved", match)
	}

	if got := stageOf(pipe[1]); got != StageSort {
		t.Fatalf("second stage = %s, want %s", got, StageSort)
	}
	sort := pipe[1][0].Value.(bson.D)
	if sort[0].Key != "datetime" || sort[0].Value != -1 {
		t.Errorf("sort = %v, want datetime descending", sort)
	}

	var project bson.M
	lookups := 0
	for _, stage := range pipe {
		switch stageOf(stage) {
		case StageLookup:
			lookups++
		case StageProject:
			project = stage[0].Value.(bson.M)
		}
	}
	if lookups != 2 {
		t.Errorf("pipeline has %d lookups, want users + comments", lookups)
	}
	if project == nil {
		t.Fatal("pipeline has no projection stage")
	}
	if _, ok := project["comments_count"]; !ok {
		t.Error("projection is missing comments_count")
	}

	author, ok := project["author"].(bson.M)
	if !ok {
		t.Fatal("projection is missing the author sub-document")
	}
	for _, field := range []string{"user_id", "username", "name", "surname"} {
		if _, ok := author[field]; !ok {
			t.Errorf("author projection is missing %q", field)
		}
	}
	for _, private := range []string{"password", "email", "roles", "access_token", "posts"} {
		if _, leaked := author[private]; leaked {
			t.Errorf("author projection leaks %q", private)
		}
	}
}
