package capture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"probe-generator/internal/decl"
)

func TestEmitter_Block_Scalar(t *testing.T) {
	t.Parallel()

	got := NewEmitter(nil).Block(0, decl.Param{Type: "int", Name: "dirfd"})

	assert.Equal(t, []string{
		"    /* int dirfd */",
		"    int32_t __dirfd = (int32_t)get_pt_regs_argumnet(regs, 0);",
		"    linx_ringbuf_store_s32(ringbuf, __dirfd);",
		"",
	}, got)
}

func TestEmitter_Block_String(t *testing.T) {
	t.Parallel()

	got := NewEmitter(nil).Block(1, decl.Param{Type: "const char *", Name: "filename"})

	assert.Equal(t, []string{
		"    /* const char * filename */",
		"    uint64_t __filename = (uint64_t)get_pt_regs_argumnet(regs, 1);",
		"    linx_ringbuf_store_charpointer(ringbuf, __filename, LINX_CHARBUF_MAX_SIZE, USER);",
		"",
	}, got)
}

func TestEmitter_Block_Deref(t *testing.T) {
	t.Parallel()

	got := NewEmitter(nil).Block(2, decl.Param{Type: "unsigned long *", Name: "nmask"})

	assert.Equal(t, []string{
		"    /* unsigned long * nmask */",
		"    uint64_t *__nmask = (uint64_t *)get_pt_regs_argumnet(regs, 2);",
		"    uint64_t ___nmask = 0;",
		"    if (__nmask) { ",
		"        bpf_probe_read_user(&___nmask, sizeof(___nmask), __nmask);",
		"    }",
		"    linx_ringbuf_store_u64(ringbuf, ___nmask);",
		"",
	}, got)

	// One store call, always with the zero-initialized scalar, so a null
	// pointer still records 0.
	body := strings.Join(got, "\n")
	assert.Equal(t, 1, strings.Count(body, "linx_ringbuf_store_u64("))
	assert.Contains(t, body, "linx_ringbuf_store_u64(ringbuf, ___nmask);")
	assert.Less(t, strings.Index(body, "___nmask = 0;"), strings.Index(body, "if (__nmask)"))
}

func TestEmitter_Block_Address(t *testing.T) {
	t.Parallel()

	got := NewEmitter(nil).Block(3, decl.Param{Type: "struct foo *", Name: "ru"})

	assert.Equal(t, []string{
		"    /* struct foo * ru */",
		"    uint64_t __ru = (uint64_t)get_pt_regs_argumnet(regs, 3);",
		"    linx_ringbuf_store_u64(ringbuf, __ru);",
		"",
	}, got)
	assert.NotContains(t, strings.Join(got, "\n"), "bpf_probe_read_user")
}

func TestEmitter_Block_UnknownScalar(t *testing.T) {
	t.Parallel()

	got := NewEmitter(nil).Block(0, decl.Param{Type: "struct sigevent", Name: "ev"})

	assert.Equal(t, "    uint64_t __ev = (uint64_t)get_pt_regs_argumnet(regs, 0);", got[1])
	assert.Equal(t, "    linx_ringbuf_store_u64(ringbuf, __ev);", got[2])
}

func TestEmitter_Blocks_Order(t *testing.T) {
	t.Parallel()

	params := []decl.Param{
		{Type: "pid_t", Name: "upid"},
		{Type: "int *", Name: "stat_addr"},
		{Type: "int", Name: "options"},
		{Type: "struct rusage *", Name: "ru"},
	}

	got := strings.Join(NewEmitter(nil).Blocks(params), "\n")

	want := `    /* pid_t upid */
    int32_t __upid = (int32_t)get_pt_regs_argumnet(regs, 0);
    linx_ringbuf_store_s32(ringbuf, __upid);

    /* int * stat_addr */
    int32_t *__stat_addr = (int32_t *)get_pt_regs_argumnet(regs, 1);
    int32_t ___stat_addr = 0;
    if (__stat_addr) { 
        bpf_probe_read_user(&___stat_addr, sizeof(___stat_addr), __stat_addr);
    }
    linx_ringbuf_store_s32(ringbuf, ___stat_addr);

    /* int options */
    int32_t __options = (int32_t)get_pt_regs_argumnet(regs, 2);
    linx_ringbuf_store_s32(ringbuf, __options);

    /* struct rusage * ru */
    uint64_t __ru = (uint64_t)get_pt_regs_argumnet(regs, 3);
    linx_ringbuf_store_u64(ringbuf, __ru);
`

	assert.Equal(t, want, got)
}

func TestEmitter_Blocks_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewEmitter(nil).Blocks(nil))
}

func TestEmitter_CustomTable(t *testing.T) {
	t.Parallel()

	table := DefaultTable().With(map[string]Entry{"struct timespec *": {StoreU64, "uint64_t *"}})
	e := NewEmitter(table)

	assert.Same(t, table, e.Table())

	got := e.Block(0, decl.Param{Type: "struct timespec *", Name: "ts"})
	assert.Equal(t, "    uint64_t *__ts = (uint64_t *)get_pt_regs_argumnet(regs, 0);", got[1])
}
