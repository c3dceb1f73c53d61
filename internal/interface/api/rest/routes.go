package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"

	// users
	RouteUsers = RouteApiV1 + "/users"

	// files
	RouteFiles        = RouteApiV1 + "/files"
	RouteFileUpload   = RouteFiles + "/upload"
	RouteMyFiles      = RouteFiles + "/my-files"
	RouteSharedWithMe = RouteFiles + "/shared-with-me"
	RouteFile         = RouteFiles + "/:file_id"
	RouteFileDownload = RouteFile + "/download"
	RouteFileAudit    = RouteFile + "/audit"

	// sharing
	RouteFileShare     = RouteFile + "/share"
	RouteFileShareLink = RouteFile + "/share-link"
	RouteFileShares    = RouteFile + "/shares"
	RouteShareDelete   = RouteFiles + "/shares/:share_id"
	RouteTokenInfo     = RouteFiles + "/share/:token/info"
	RouteTokenDownload = RouteFiles + "/share/:token/download"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
