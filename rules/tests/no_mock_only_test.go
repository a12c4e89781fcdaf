package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/jslint"
)

func TestNoMockOnlyTestRule(t *testing.T) {
	rule := NewNoMockOnlyTestRule()
	assert.Equal(t, "no-mock-only-test", rule.Name())

	tests := []struct {
		name           string
		src            string
		expectedIssues int
	}{
		{
			name: "behavior assertion only",
			src: `
test('returns correct value', () => {
  const result = add(1, 2);
  expect(result).toBe(3);
});`,
			expectedIssues: 0,
		},
		{
			name: "mock and behavior assertions",
			src: `
test('calls callback and returns value', () => {
  const mockFn = vi.fn();
  const result = processWithCallback(mockFn, 'data');
  expect(mockFn).toHaveBeenCalled();
  expect(result).toBe('processed');
});`,
			expectedIssues: 0,
		},
		{
			name:           "no assertions",
			src:            `test('does something', () => { const result = doSomething(); });`,
			expectedIssues: 0,
		},
		{
			name:           "throw assertion",
			src:            `test('throws error', () => { expect(() => dangerousFunction()).toThrow('error'); });`,
			expectedIssues: 0,
		},
		{
			name: "only toHaveBeenCalled",
			src: `
test('calls function', () => {
  const mockFn = vi.fn();
  processData(mockFn);
  expect(mockFn).toHaveBeenCalled();
});`,
			expectedIssues: 1,
		},
		{
			name: "several mock matchers",
			src: `
it('calls functions in order', () => {
  const mockA = vi.fn();
  const mockB = vi.fn();
  process(mockA, mockB);
  expect(mockA).toHaveBeenCalledTimes(1);
  expect(mockB).toHaveBeenLastCalledWith('data');
  expect(mockB).toHaveBeenNthCalledWith(1, 'data');
});`,
			expectedIssues: 1,
		},
		{
			name:           "negated mock matcher",
			src:            `test('never calls', () => { expect(mockFn).not.toHaveBeenCalled(); });`,
			expectedIssues: 1,
		},
		{
			name:           "mock matcher outside a test",
			src:            `expect(mockFn).toHaveBeenCalled();`,
			expectedIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := check(t, rule, tt.src)
			require.Len(t, issues, tt.expectedIssues)
			for _, issue := range issues {
				assert.Equal(t, MessageMockOnlyTest, issue.MessageID)
				assert.Equal(t, jslint.SeverityError, issue.Severity)
				assert.Contains(t, issue.Message, "Test only asserts on mock function calls")
			}
		})
	}
}

func TestNoMockOnlyTestCustomMatchers(t *testing.T) {
	src := `test('spy', () => { expect(spy).toBeCalledOnce(); });`

	assert.Empty(t, check(t, NewNoMockOnlyTestRule(), src))
	assert.Len(t, check(t, NewNoMockOnlyTestRule(WithMockMatchers("toBeCalledOnce")), src), 1)
}
