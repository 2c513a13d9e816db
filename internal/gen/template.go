package gen

import "text/template"

// probeData holds all data needed for the probe template.
type probeData struct {
	Upper string
	Lower string
	Body  string
}

var probeTemplate = template.Must(
	template.New("probe").
		Parse(`#include "get_pt_regs.h"
#include "ringbuf_func.h"

SEC("tp_btf/sys_enter")
int BPF_PROG({{.Lower}}_e, struct pt_regs *regs, long id)
{
    linx_ringbuf_t *ringbuf = linx_ringbuf_get();
    if (!ringbuf) {
        return 0;
    }

    linx_ringbuf_load_event(ringbuf, LINX_EVENT_TYPE_{{.Upper}}_E, -1);

    linx_ringbuf_submit_event(ringbuf);

    return 0;
}

SEC("tp_btf/sys_exit")
int BPF_PROG({{.Lower}}_x, struct pt_regs *regs, long ret)
{
    linx_ringbuf_t *ringbuf = linx_ringbuf_get();
    if (!ringbuf) {
        return 0;
    }

    linx_ringbuf_load_event(ringbuf, LINX_EVENT_TYPE_{{.Upper}}_X, ret);

{{.Body}}

    linx_ringbuf_submit_event(ringbuf);

    return 0;
}
`))
