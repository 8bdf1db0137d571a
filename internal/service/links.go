package service

import "strings"

// apiPath builds the tenant qualified location of a v1 resource.
func apiPath(tenantDomain string, elems ...string) string {
	return "/t/" + tenantDomain + "/api/server/v1/" + strings.Join(elems, "/")
}
