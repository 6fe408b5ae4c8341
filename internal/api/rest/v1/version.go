package v1

// APIVersion is the version segment of the REST API surface
const APIVersion = "v1"

// BasePath is the URL prefix for all versioned routes
const BasePath = "/api/" + APIVersion
