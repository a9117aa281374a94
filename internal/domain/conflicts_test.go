package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountConflictsAndSize(t *testing.T) {
	content := []byte(`class A {
<<<<<<< left
  int a = 1;
  int b = 1;
=======
  int a = 2;
>>>>>>> right
  void f() {}
<<<<<<< left
||||||| base
  int c = 0;
=======
  int c = 3;
>>>>>>> right
}
`)

	assert.Equal(t, 2, CountConflicts(content))
	assert.Equal(t, 5, ConflictSize(content))
	assert.Equal(t, 0, CountConflicts([]byte("class A {}\n")))
	assert.Equal(t, 0, ConflictSize([]byte("class A {}\n")))
}
