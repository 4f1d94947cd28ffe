package services

import (
	"testing"

	"feed_workspace/dto"
)

func TestMarkLiked(t *testing.T) {
	posts := []dto.FeedPost{
		{PostID: "p1"},
		{PostID: "p2"},
		{PostID: "p3"},
	}
	liked := map[string]bool{"p1": true, "p3": true}

	out := markLiked(posts, liked)

	want := []bool{true, false, true}
	for i, post := range out {
		if post.Liked != want[i] {
			t.Errorf("post %s liked = %v, want %v", post.PostID, post.Liked, want[i])
		}
	}
}

func TestMarkLikedEmptySet(t *testing.T) {
	posts := []dto.FeedPost{{PostID: "p1", Liked: true}}
	out := markLiked(posts, nil)
	if out[0].Liked {
		t.Error("liked flag survived an empty membership set")
	}
}
