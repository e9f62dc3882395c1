package parporttest

import "github.com/xanderflood/relayctl/pkg/parport"

//Opener records every path it is asked to open and hands out Port, or
//fails with Err when it is set
type Opener struct {
	Port  *FakePort
	Err   error
	Paths []string
}

//Open satisfies parport.Opener
func (o *Opener) Open(path string) (parport.Port, error) {
	o.Paths = append(o.Paths, path)
	if o.Err != nil {
		return nil, o.Err
	}
	return o.Port, nil
}
