package route

import pc "github.com/coregx/pathcomb"

// ResourceKinds are the collection names accepted by ParseResource.
var ResourceKinds = []string{
	"users", "user", "orgs", "teams", "repos",
	"issues", "pulls", "comments", "posts",
}

// /<kind>/<id>
var resource = pc.Pair(
	pc.KeepLeft(
		pc.KeepRight(pc.Slash, pc.MustKeywords(ResourceKinds...)),
		pc.Slash),
	pc.IntVar)

// ParseResource parses /<kind>/<id> where kind is one of ResourceKinds.
// The longest matching kind wins, so "/users/7" yields "users", not "user".
func ParseResource(path string) (pc.Tuple[string, int], string, bool) {
	return resource.Parse(path)
}
