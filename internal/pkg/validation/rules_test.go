package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAssetKey(t *testing.T) {
	assert.True(t, IsAssetKey("navbar_logo"))
	assert.True(t, IsAssetKey("specialization_data-science"))
	assert.True(t, IsAssetKey("specialization_c++-programming"))
	assert.True(t, IsAssetKey("specialization_ai-&-machine-learning"))
	assert.True(t, IsAssetKey("specialization_ui/ux-design"))
	assert.True(t, IsAssetKey("course_node.js-#1"))
	assert.False(t, IsAssetKey(""))
	assert.False(t, IsAssetKey("Navbar Logo"))
	assert.False(t, IsAssetKey("navbar\tlogo"))
	assert.False(t, IsAssetKey("hero\x00"))
	assert.False(t, IsAssetKey("/etc/passwd"))
	assert.False(t, IsAssetKey("media/../avatars"))
}

func TestIsSection(t *testing.T) {
	assert.True(t, IsSection("general"))
	assert.True(t, IsSection("home_hero"))
	assert.False(t, IsSection("../etc"))
	assert.False(t, IsSection("a/b"))
}

func TestIsImageMimeType(t *testing.T) {
	assert.True(t, IsImageMimeType("image/png"))
	assert.True(t, IsImageMimeType(" IMAGE/JPEG; charset=binary"))
	assert.False(t, IsImageMimeType("image/"))
	assert.False(t, IsImageMimeType("application/pdf"))
	assert.False(t, IsImageMimeType(""))
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())
}
