package keycodec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"name":            "name",
		"profileImageUrl": "profile_image_url",
		"isFeatured":      "is_featured",
		"aB":              "a_b",
		"aBC":             "a_b_c",
		"already_snake":   "already_snake",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnake(in), in)
	}
}

func TestToCamel(t *testing.T) {
	cases := map[string]string{
		"name":              "name",
		"profile_image_url": "profileImageUrl",
		"day_of_week":       "dayOfWeek",
		"a_b_c":             "aBC",
		"alreadyCamel":      "alreadyCamel",
		"_id":               "_id",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToCamel(in), in)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	when := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	external := Object{
		{Key: "title", Value: "Toonie Tuesday"},
		{Key: "dayOfWeek", Value: "Tuesday"},
		{Key: "eventDate", Value: when},
		{Key: "isActive", Value: true},
		{Key: "displayOrder", Value: 3},
		{Key: "socialLinks", Value: Object{
			{Key: "instagramUrl", Value: "https://instagram.com/x"},
		}},
		{Key: "tags", Value: []any{"a", Object{{Key: "tagName", Value: "b"}}}},
		{Key: "nothing", Value: nil},
	}

	internal := DecodeObject(external)
	assert.Equal(t, []string{
		"title", "day_of_week", "event_date", "is_active", "display_order", "social_links", "tags", "nothing",
	}, internal.Keys())

	nested, ok := internal.Get("social_links")
	require.True(t, ok)
	assert.Equal(t, []string{"instagram_url"}, nested.(Object).Keys())

	tags, _ := internal.Get("tags")
	assert.Equal(t, "a", tags.([]any)[0])
	assert.Equal(t, []string{"tag_name"}, tags.([]any)[1].(Object).Keys())

	date, _ := internal.Get("event_date")
	assert.Equal(t, when, date, "date values pass through untouched")

	assert.Equal(t, external, EncodeObject(internal))
	assert.Equal(t, internal, DecodeObject(EncodeObject(internal)))
}

func TestTransformMapsAndSlices(t *testing.T) {
	in := map[string]any{
		"performerType": "dj",
		"links":         []map[string]any{{"websiteUrl": "x"}},
		"items":         []Object{{{Key: "imageUrl", Value: "y"}}},
	}

	out := Decode(in).(map[string]any)
	assert.Equal(t, "dj", out["performer_type"])
	assert.Equal(t, "x", out["links"].([]map[string]any)[0]["website_url"])
	assert.Equal(t, []string{"image_url"}, out["items"].([]Object)[0].Keys())

	assert.Equal(t, in, Encode(out))
}

func TestValuesAreNotInspected(t *testing.T) {
	in := Object{{Key: "caption", Value: "camelCase_value stays"}}
	out := DecodeObject(in)
	v, _ := out.Get("caption")
	assert.Equal(t, "camelCase_value stays", v)

	assert.Equal(t, 42, Decode(42))
	assert.Nil(t, DecodeObject(nil))
}

func TestObjectJSONKeepsOrder(t *testing.T) {
	o := Object{
		{Key: "zeta", Value: 1},
		{Key: "alpha", Value: "a"},
		{Key: "mid", Value: Object{{Key: "y", Value: true}, {Key: "b", Value: nil}}},
	}

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"a","mid":{"y":true,"b":null}}`, string(data))

	var back Object
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, back.Keys())
	assert.Equal(t, []string{"y", "b"}, back[2].Value.(Object).Keys())
}

func TestEncodeStruct(t *testing.T) {
	type row struct {
		ID        string `json:"id"`
		VenueTag  string `json:"venue_tag"`
		ImageURL  string `json:"image_url"`
		IsVisible bool   `json:"is_visible"`
	}

	o, err := EncodeStruct(row{ID: "1", VenueTag: "both", ImageURL: "u", IsVisible: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "venueTag", "imageUrl", "isVisible"}, o.Keys())

	items, err := EncodeSlice([]row{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	require.Len(t, items, 2)
	id, _ := items[1].Get("id")
	assert.Equal(t, "b", id)
}

func TestSetAndWithout(t *testing.T) {
	o := Object{{Key: "a", Value: 1}}
	o = o.Set("a", 2).Set("b", 3)
	assert.Equal(t, []any{2, 3}, o.Values())
	assert.Equal(t, []string{"b"}, o.Without("a").Keys())
	assert.Equal(t, 2, o.Len())
}

func TestIsSnake(t *testing.T) {
	assert.True(t, IsSnake("day_of_week"))
	assert.False(t, IsSnake("dayOfWeek"))
	assert.True(t, IsSnake("name"))
	assert.False(t, IsSnake(""))
}
