package entities

import (
	"slices"
	"sort"
)

// shootCatalog maps every shoot category to the edit types offered for it.
var shootCatalog = map[string][]string{
	"wedding":     {"highlight_reel", "full_ceremony", "teaser", "documentary_cut", "social_clips"},
	"music":       {"music_video", "live_performance", "lyric_video", "behind_the_scenes"},
	"commercial":  {"product_ad", "brand_story", "social_cut", "explainer"},
	"corporate":   {"interview", "conference_recap", "training_video", "testimonial"},
	"event":       {"event_recap", "full_coverage", "social_clips"},
	"real_estate": {"property_tour", "aerial_showcase", "listing_photos"},
	"sports":      {"game_highlights", "athlete_profile", "training_session"},
	"fashion":     {"lookbook", "runway_edit", "campaign_film"},
	"documentary": {"short_documentary", "feature_cut", "interview_series"},
}

var addonCatalog = []string{
	"drone",
	"lighting_kit",
	"extra_camera",
	"gimbal",
	"teleprompter",
	"audio_kit",
	"makeup_artist",
}

// ShootTypes returns the catalog keys in sorted order.
func ShootTypes() []string {
	keys := make([]string, 0, len(shootCatalog))
	for k := range shootCatalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EditTypesFor returns a copy of the edit types of shootType, or nil when
// the shoot type is unknown.
func EditTypesFor(shootType string) []string {
	return slices.Clone(shootCatalog[shootType])
}

func IsKnownShootType(shootType string) bool {
	_, ok := shootCatalog[shootType]
	return ok
}

func IsValidEditType(shootType, editType string) bool {
	return slices.Contains(shootCatalog[shootType], editType)
}

func Addons() []string {
	return slices.Clone(addonCatalog)
}

func IsKnownAddon(id string) bool {
	return slices.Contains(addonCatalog, id)
}
