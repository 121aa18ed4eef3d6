package session

// cueSchema is unified with every CUE session file. #Session is a
// definition, so it is closed: unknown fields are an error.
const cueSchema = `
#Session: {
	name:         string & !=""
	description?: string
	function:     string & !=""
	epsilon?:     number & >0
	derivatives?: [...number]
	integral?: {
		a:         number
		b:         number
		samples?:  int & >=1
		rule?:     "inclusive" | "left"
		delay_ms?: int & >=0
	}
	points?: {
		start:   number
		end:     number
		step:    number & >0
		slopes?: bool
	}
}
`
