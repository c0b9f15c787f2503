package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry(t *testing.T) {
	assert.Equal(t, "Entered Electrical", Entry("Electrical", ""))
	assert.Equal(t, "Entered Electrical from the south", Entry("Electrical", "south"))
}

func TestPosition(t *testing.T) {
	assert.Equal(t, "In Electrical", Position("Electrical", ""))
	assert.Equal(t, "In the center of the Electrical", Position("Electrical", "center of the"))
	assert.Equal(t, "In the top left of the Medbay", Position("Medbay", "top left of the"))
}

func TestTask(t *testing.T) {
	assert.Equal(t, "Fix Wiring within reach", Task("Fix Wiring", true, "right", 0.5))
	assert.Equal(t, "Upload Data right, 4.2 meters", Task("Upload Data", false, "right", 4.2))
}

func TestNoTasksAndAtTask(t *testing.T) {
	assert.Equal(t, "No tasks available in Electrical", NoTasks("Electrical"))
	assert.Equal(t, "At Fix Wiring", AtTask("Fix Wiring"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "A. B. C", Join("A", "B", "C"))
	assert.Equal(t, "A. C", Join("A", "", "C"))
	assert.Equal(t, "", Join())
}
