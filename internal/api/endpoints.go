package api

import "net/url"

// Remote API route layout. The backend is an ASP.NET service, hence the
// PascalCase segments.
const (
	ownersPath     = "/api/Owners"
	propertiesPath = "/api/Properties"
	imagesPath     = "/api/PropertyImages"
	tracesPath     = "/api/PropertyTraces"
)

func ownerPath(id string) string {
	return ownersPath + "/" + url.PathEscape(id)
}

func ownerPropertiesPath(id string) string {
	return ownerPath(id) + "/properties"
}

func propertyPath(id string) string {
	return propertiesPath + "/" + url.PathEscape(id)
}

func propertiesByOwnerPath(ownerID string) string {
	return propertiesPath + "/owner/" + url.PathEscape(ownerID)
}

func imagePath(id string) string {
	return imagesPath + "/" + url.PathEscape(id)
}

func imagesByPropertyPath(propertyID string) string {
	return imagesPath + "/property/" + url.PathEscape(propertyID)
}

func tracesByPropertyPath(propertyID string) string {
	return tracesPath + "/property/" + url.PathEscape(propertyID)
}
