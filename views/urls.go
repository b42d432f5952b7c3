package views

import (
	"fmt"
	"strings"

	"github.com/aksecuretech/portal-go/models"
)

// ResolveImageURL turns a stored image reference into a fetchable URL.
// Absolute URLs pass through; relative paths resolve against the asset base
// (the API host without its /api segment).
func ResolveImageURL(assetBase, image string) string {
	if strings.HasPrefix(image, "http") {
		return image
	}
	return strings.TrimRight(assetBase, "/") + image
}

// ResolveImageURLs maps ResolveImageURL over an image set.
func ResolveImageURLs(assetBase string, images []string) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = ResolveImageURL(assetBase, img)
	}
	return out
}

// MapsURL links the owner's geographic point on Google Maps. Empty when the
// user has no recorded location.
func MapsURL(owner *models.User) string {
	if owner == nil {
		return ""
	}
	loc := owner.Location
	if loc.Lat == 0 && loc.Lng == 0 {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", loc.Lat, loc.Lng)
}
