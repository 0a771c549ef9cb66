// Package route is a sample grammar built from pathcomb combinators, together
// with two hand-written routines that parse the same grammar. The routines
// exist so the composed parser can be checked and measured against code
// written directly for the grammar.
//
// Grammar (in applicative notation, *> keeps the right value, <* keeps the
// left value, <*> keeps both):
//
//	Slash *> "users" *> Slash *> StringVar <* Slash <* "posts" <* Slash <*> IntVar
package route

import (
	"strconv"
	"strings"

	pc "github.com/coregx/pathcomb"
)

var (
	users = pc.Literal("users")
	posts = pc.Literal("posts")
)

// userPosts is built once at package initialization.
var userPosts = pc.Pair(
	pc.KeepLeft(
		pc.KeepLeft(
			pc.KeepLeft(
				pc.KeepRight(
					pc.KeepRight(
						pc.KeepRight(pc.Slash, users),
						pc.Slash),
					pc.StringVar),
				pc.Slash),
			posts),
		pc.Slash),
	pc.IntVar)

// UserPost is the typed result of the /users/<name>/posts/<id> grammar.
type UserPost struct {
	User string
	ID   int
}

var userPost = pc.Map(userPosts, func(t pc.Tuple[string, int]) UserPost {
	return UserPost{User: t.First, ID: t.Second}
})

// UserPosts returns the composed /users/<name>/posts/<id> parser.
func UserPosts() pc.Parser[pc.Tuple[string, int]] {
	return userPosts
}

// ParseUserPosts runs the composed parser without going through an interface.
func ParseUserPosts(path string) (pc.Tuple[string, int], string, bool) {
	return userPosts.Parse(path)
}

// ParsePost runs the composed parser and maps the tuple into a UserPost.
func ParsePost(path string) (UserPost, string, bool) {
	return userPost.Parse(path)
}

// ParseHardcoded parses the same grammar with every step written inline.
func ParseHardcoded(path string) (pc.Tuple[string, int], string, bool) {
	var zero pc.Tuple[string, int]
	remaining := path

	if !strings.HasPrefix(remaining, "/") {
		return zero, "", false
	}
	remaining = remaining[1:]

	if !strings.HasPrefix(remaining, "users") {
		return zero, "", false
	}
	remaining = remaining[len("users"):]

	if !strings.HasPrefix(remaining, "/") {
		return zero, "", false
	}
	remaining = remaining[1:]

	var name string
	if idx := strings.IndexByte(remaining, '/'); idx < 0 {
		name, remaining = remaining, ""
	} else {
		name, remaining = remaining[:idx], remaining[idx:]
	}

	if !strings.HasPrefix(remaining, "/") {
		return zero, "", false
	}
	remaining = remaining[1:]

	if !strings.HasPrefix(remaining, "posts") {
		return zero, "", false
	}
	remaining = remaining[len("posts"):]

	if !strings.HasPrefix(remaining, "/") {
		return zero, "", false
	}
	remaining = remaining[1:]

	seg := remaining
	if idx := strings.IndexByte(remaining, '/'); idx < 0 {
		remaining = ""
	} else {
		seg, remaining = remaining[:idx], remaining[idx:]
	}
	id, err := strconv.Atoi(seg)
	if err != nil {
		return zero, "", false
	}

	return pc.Tuple[string, int]{First: name, Second: id}, remaining, true
}

// ParseWithPrimitives parses the same grammar by calling each primitive in
// turn, with the literals passed in by the caller.
func ParseWithPrimitives(usersLit, postsLit pc.Literal, path string) (pc.Tuple[string, int], string, bool) {
	var zero pc.Tuple[string, int]
	var ok bool
	remaining := path

	if _, remaining, ok = pc.Slash.Parse(remaining); !ok {
		return zero, "", false
	}
	if _, remaining, ok = usersLit.Parse(remaining); !ok {
		return zero, "", false
	}
	if _, remaining, ok = pc.Slash.Parse(remaining); !ok {
		return zero, "", false
	}
	name, remaining, _ := pc.StringVar.Parse(remaining)
	if _, remaining, ok = pc.Slash.Parse(remaining); !ok {
		return zero, "", false
	}
	if _, remaining, ok = postsLit.Parse(remaining); !ok {
		return zero, "", false
	}
	if _, remaining, ok = pc.Slash.Parse(remaining); !ok {
		return zero, "", false
	}
	id, remaining, ok := pc.IntVar.Parse(remaining)
	if !ok {
		return zero, "", false
	}

	return pc.Tuple[string, int]{First: name, Second: id}, remaining, true
}
