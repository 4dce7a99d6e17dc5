package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostFilterQuery(t *testing.T) {
	author := primitive.NewObjectID()

	cases := []struct {
		name   string
		filter PostFilter
		want   bson.M
	}{
		{"empty matches any", PostFilter{}, bson.M{}},
		{"tag only", PostFilter{Tag: "Ask for help"}, bson.M{"type": "Ask for help"}},
		{"city only", PostFilter{City: "Springfield"}, bson.M{"city": "Springfield"}},
		{
			"tag and city are conjoined",
			PostFilter{Tag: "Ask for help", City: "Springfield"},
			bson.M{"type": "Ask for help", "city": "Springfield"},
		},
		{"author", PostFilter{AuthorID: &author}, bson.M{"userId": author}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.filter.query()
			if len(got) != len(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for k, v := range c.want {
				if got[k] != v {
					t.Fatalf("key %q: got %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestCreateRejectsBadText(t *testing.T) {
	r := NewPostRepo(nil) // validation happens before the collection is touched
	author := primitive.NewObjectID()

	if _, err := r.Create(context.Background(), author, "   ", "", "", ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("blank text: got %v, want ErrEmptyText", err)
	}

	long := strings.Repeat("x", maxPostLen+1)
	if _, err := r.Create(context.Background(), author, long, "", "", ""); !errors.Is(err, ErrTextTooLong) {
		t.Fatalf("long text: got %v, want ErrTextTooLong", err)
	}
}

func TestAddReplyRejectsBlankText(t *testing.T) {
	r := NewPostRepo(nil)
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := r.AddReply(context.Background(), primitive.NewObjectID(), text); !errors.Is(err, ErrEmptyReply) {
			t.Fatalf("text %q: got %v, want ErrEmptyReply", text, err)
		}
	}
}

// The toggle is one conditional document update; this pins the pipeline's
// shape so both reaction fields are rewritten in the same $set stage.
func TestTogglePipelineShape(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := togglePipeline(userID, "likes", "dislikes")

	if len(pipeline) != 1 {
		t.Fatalf("expected a single stage, got %d", len(pipeline))
	}

	stage := pipeline[0]
	if stage[0].Key != "$set" {
		t.Fatalf("expected $set stage, got %q", stage[0].Key)
	}

	set, ok := stage[0].Value.(bson.M)
	if !ok {
		t.Fatalf("unexpected $set value type %T", stage[0].Value)
	}
	if _, ok := set["likes"]; !ok {
		t.Fatal("pipeline does not rewrite likes")
	}
	if _, ok := set["dislikes"]; !ok {
		t.Fatal("pipeline does not rewrite dislikes")
	}

	likes, ok := set["likes"].(bson.M)
	if !ok {
		t.Fatalf("unexpected likes expression type %T", set["likes"])
	}
	if _, ok := likes["$cond"]; !ok {
		t.Fatal("likes expression is not conditional on current membership")
	}

	dislikes, ok := set["dislikes"].(bson.M)
	if !ok {
		t.Fatalf("unexpected dislikes expression type %T", set["dislikes"])
	}
	if _, ok := dislikes["$setDifference"]; !ok {
		t.Fatal("dislikes expression does not remove the user id")
	}
}

func TestProfileUpdateSet(t *testing.T) {
	first := "Jane"
	country := "India"

	upd := ProfileUpdate{FirstName: &first, Country: &country}
	set := upd.set()

	if len(set) != 2 {
		t.Fatalf("expected 2 fields, got %v", set)
	}
	if set["firstName"] != "Jane" || set["country"] != "India" {
		t.Fatalf("unexpected $set %v", set)
	}
	if _, ok := set["lastName"]; ok {
		t.Fatal("nil field must not be set")
	}

	if got := (ProfileUpdate{}).set(); len(got) != 0 {
		t.Fatalf("empty update produced $set %v", got)
	}
}
