// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import "math/big"

// Message IDs, RFC 4253 §12, RFC 4252 §6, RFC 4254 §9.
const (
	MsgDisconnect     = 1
	MsgIgnore         = 2
	MsgUnimplemented  = 3
	MsgDebug          = 4
	MsgServiceRequest = 5
	MsgServiceAccept  = 6

	MsgKexInit  = 20
	MsgNewKeys  = 21
	MsgKexDHInit  = 30
	MsgKexDHReply = 31

	MsgUserAuthRequest = 50
	MsgUserAuthFailure = 51
	MsgUserAuthSuccess = 52
	MsgUserAuthBanner  = 53
	MsgUserAuthPKOK    = 60

	MsgGlobalRequest  = 80
	MsgRequestSuccess = 81
	MsgRequestFailure = 82

	MsgChannelOpen            = 90
	MsgChannelOpenConfirm     = 91
	MsgChannelOpenFailure     = 92
	MsgChannelWindowAdjust    = 93
	MsgChannelData            = 94
	MsgChannelExtendedData    = 95
	MsgChannelEOF             = 96
	MsgChannelClose           = 97
	MsgChannelRequest         = 98
	MsgChannelSuccess         = 99
	MsgChannelFailure         = 100
)

// DisconnectReason enumerates the reason codes of RFC 4253 §11.1, for
// use in a DisconnectMsg sent by the caller's error-handling policy
// when it emits SSH_MSG_DISCONNECT.
type DisconnectReason uint32

const (
	HostNotAllowedToConnect     DisconnectReason = 1
	ProtocolErrorReason         DisconnectReason = 2
	KeyExchangeFailed           DisconnectReason = 3
	ReservedDisconnectReason    DisconnectReason = 4
	MACError                    DisconnectReason = 5
	CompressionError            DisconnectReason = 6
	ServiceNotAvailable         DisconnectReason = 7
	ProtocolVersionNotSupported DisconnectReason = 8
	HostKeyNotVerifiable        DisconnectReason = 9
	ConnectionLost              DisconnectReason = 10
	ByApplication                DisconnectReason = 11
	TooManyConnections           DisconnectReason = 12
	AuthCancelledByUser          DisconnectReason = 13
	NoMoreAuthMethodsAvailable   DisconnectReason = 14
	IllegalUserName              DisconnectReason = 15
)

// Message is implemented by every decodable/encodable SSH message
// variant. The set is closed: decode dispatches on the wire message
// ID via a plain switch rather than any form of registry or virtual
// hierarchy, since the variant set is small and fixed.
type Message interface {
	messageID() uint8
	encode(w *Writer)
}

// Encode serializes m into a complete wire message: a leading
// message-ID byte followed by the variant's fields.
func Encode(m Message) []byte {
	w := NewWriter(64)
	w.WriteUint8(m.messageID())
	m.encode(w)
	return w.Bytes()
}

// Decode parses payload — one already-framed SSH message, with no
// sequence number or MAC, as handed over by the framing collaborator
// — into a concrete Message. It returns the number of bytes consumed,
// which for a well-formed message is always len(payload): trailing
// bytes after a variant's declared fields are a MalformedError.
//
// A recognized-but-not-decoded message ID (the GLOBAL_REQUEST/
// CHANNEL_OPEN/CHANNEL_DATA/CHANNEL_REQUEST families, which carry
// request-type-specific payloads this package doesn't parse) yields
// an UnimplementedError carrying that ID so the caller can reply with
// SSH_MSG_UNIMPLEMENTED. Any message ID outside the table above yields
// the same error.
func Decode(payload []byte) (Message, int, error) {
	if len(payload) == 0 {
		return nil, 0, Malformed("empty payload", nil)
	}
	id := payload[0]
	r := NewReader(payload[1:])

	var (
		msg Message
		err error
	)
	switch id {
	case MsgDisconnect:
		msg, err = decodeDisconnect(r)
	case MsgIgnore:
		msg, err = decodeIgnore(r)
	case MsgUnimplemented:
		msg, err = decodeUnimplemented(r)
	case MsgDebug:
		msg, err = decodeDebug(r)
	case MsgServiceRequest:
		msg, err = decodeServiceRequest(r)
	case MsgServiceAccept:
		msg, err = decodeServiceAccept(r)
	case MsgKexInit:
		msg, err = decodeKexInit(r)
	case MsgNewKeys:
		msg, err = &NewKeysMsg{}, nil
	case MsgKexDHInit:
		msg, err = decodeKexDHInit(r)
	case MsgKexDHReply:
		msg, err = decodeKexDHReply(r)
	case MsgUserAuthRequest:
		msg, err = decodeUserAuthRequest(r)
	case MsgUserAuthFailure:
		msg, err = decodeUserAuthFailure(r)
	case MsgUserAuthSuccess:
		msg, err = &UserAuthSuccessMsg{}, nil
	case MsgUserAuthBanner:
		msg, err = decodeUserAuthBanner(r)
	case MsgUserAuthPKOK:
		msg, err = decodeUserAuthPKOK(r)
	case MsgRequestSuccess:
		msg, err = decodeGlobalRequestSuccess(r)
	case MsgRequestFailure:
		msg, err = &GlobalRequestFailureMsg{}, nil
	case MsgChannelWindowAdjust:
		msg, err = decodeChannelWindowAdjust(r)
	case MsgChannelEOF:
		msg, err = decodeChannelEOF(r)
	case MsgChannelClose:
		msg, err = decodeChannelClose(r)
	case MsgChannelSuccess:
		msg, err = decodeChannelSuccess(r)
	case MsgChannelFailure:
		msg, err = decodeChannelFailure(r)
	default:
		return nil, 0, UnimplementedError{MessageID: id}
	}
	if err != nil {
		return nil, 0, err
	}
	if !r.AtEnd() {
		return nil, 0, Malformed("trailing bytes after message body", nil)
	}
	if ki, ok := msg.(*KexInit); ok {
		ki.RawPayload = append([]byte(nil), payload...)
	}
	return msg, len(payload), nil
}

// --- DISCONNECT ---

// DisconnectMsg is RFC 4253 §11.1.
type DisconnectMsg struct {
	Reason      DisconnectReason
	Description string
	Language    string
}

func (*DisconnectMsg) messageID() uint8 { return MsgDisconnect }

func (m *DisconnectMsg) encode(w *Writer) {
	w.WriteUint32(uint32(m.Reason))
	w.WriteString([]byte(m.Description))
	w.WriteString([]byte(m.Language))
}

func decodeDisconnect(r *Reader) (*DisconnectMsg, error) {
	reason, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	desc, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	lang, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &DisconnectMsg{
		Reason:      DisconnectReason(reason),
		Description: safeString(string(desc)),
		Language:    string(lang),
	}, nil
}

// --- IGNORE ---

// IgnoreMsg is RFC 4253 §11.2.
type IgnoreMsg struct {
	Data []byte
}

func (*IgnoreMsg) messageID() uint8 { return MsgIgnore }
func (m *IgnoreMsg) encode(w *Writer) { w.WriteString(m.Data) }

func decodeIgnore(r *Reader) (*IgnoreMsg, error) {
	data, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &IgnoreMsg{Data: data}, nil
}

// --- UNIMPLEMENTED ---

// UnimplementedMsg is RFC 4253 §11.4, the reply to an unrecognized or
// unhandled message ID. SeqNum is the peer's sequence number for the
// offending packet; the framing collaborator supplies it.
type UnimplementedMsg struct {
	SeqNum uint32
}

func (*UnimplementedMsg) messageID() uint8 { return MsgUnimplemented }
func (m *UnimplementedMsg) encode(w *Writer) { w.WriteUint32(m.SeqNum) }

// NewUnimplemented builds the SSH_MSG_UNIMPLEMENTED reply for a packet
// with the given sequence number, ready to hand to Encode.
func NewUnimplemented(seqNum uint32) *UnimplementedMsg {
	return &UnimplementedMsg{SeqNum: seqNum}
}

func decodeUnimplemented(r *Reader) (*UnimplementedMsg, error) {
	seq, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &UnimplementedMsg{SeqNum: seq}, nil
}

// --- DEBUG ---

// DebugMsg is RFC 4253 §11.3.
type DebugMsg struct {
	AlwaysDisplay bool
	Message       string
	Language      string
}

func (*DebugMsg) messageID() uint8 { return MsgDebug }

func (m *DebugMsg) encode(w *Writer) {
	w.WriteBool(m.AlwaysDisplay)
	w.WriteString([]byte(m.Message))
	w.WriteString([]byte(m.Language))
}

func decodeDebug(r *Reader) (*DebugMsg, error) {
	always, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	msg, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	lang, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &DebugMsg{AlwaysDisplay: always, Message: safeString(string(msg)), Language: string(lang)}, nil
}

// --- SERVICE_REQUEST / SERVICE_ACCEPT ---

// ServiceRequestMsg is RFC 4253 §10.
type ServiceRequestMsg struct {
	Service string
}

func (*ServiceRequestMsg) messageID() uint8 { return MsgServiceRequest }
func (m *ServiceRequestMsg) encode(w *Writer) { w.WriteString([]byte(m.Service)) }

func decodeServiceRequest(r *Reader) (*ServiceRequestMsg, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &ServiceRequestMsg{Service: string(s)}, nil
}

// ServiceAcceptMsg is RFC 4253 §10.
type ServiceAcceptMsg struct {
	Service string
}

func (*ServiceAcceptMsg) messageID() uint8 { return MsgServiceAccept }
func (m *ServiceAcceptMsg) encode(w *Writer) { w.WriteString([]byte(m.Service)) }

func decodeServiceAccept(r *Reader) (*ServiceAcceptMsg, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &ServiceAcceptMsg{Service: string(s)}, nil
}

// --- KEXINIT ---

// KexInit is the RFC 4253 §7.1 wire message: the ten ordered
// algorithm name-lists, the 16-byte cookie, and (once decoded) the
// byte-exact payload it was parsed from, RawPayload, which the
// exchange hash requires verbatim.
type KexInit struct {
	Cookie                   [16]byte
	KexAlgos                 []string
	ServerHostKeyAlgos       []string
	CiphersClientServer      []string
	CiphersServerClient      []string
	MACsClientServer         []string
	MACsServerClient         []string
	CompressionClientServer  []string
	CompressionServerClient  []string
	LanguagesClientServer    []string
	LanguagesServerClient    []string
	FirstKexPacketFollows    bool

	// RawPayload is the exact bytes (message ID included) this
	// KexInit was decoded from. It is nil for a locally constructed
	// KexInit, and Encode does not set it — callers that need I_C/I_S
	// for a locally built KexInit should capture Encode(kexInit)'s
	// result themselves at send time.
	RawPayload []byte
}

func (*KexInit) messageID() uint8 { return MsgKexInit }

func (m *KexInit) encode(w *Writer) {
	w.WriteRaw(m.Cookie[:])
	w.WriteNameList(m.KexAlgos)
	w.WriteNameList(m.ServerHostKeyAlgos)
	w.WriteNameList(m.CiphersClientServer)
	w.WriteNameList(m.CiphersServerClient)
	w.WriteNameList(m.MACsClientServer)
	w.WriteNameList(m.MACsServerClient)
	w.WriteNameList(m.CompressionClientServer)
	w.WriteNameList(m.CompressionServerClient)
	w.WriteNameList(m.LanguagesClientServer)
	w.WriteNameList(m.LanguagesServerClient)
	w.WriteBool(m.FirstKexPacketFollows)
	w.WriteUint32(0) // reserved
}

func decodeKexInit(r *Reader) (*KexInit, error) {
	m := &KexInit{}
	cookie, err := r.ReadRaw(16)
	if err != nil {
		return nil, err
	}
	copy(m.Cookie[:], cookie)

	fields := []*[]string{
		&m.KexAlgos, &m.ServerHostKeyAlgos,
		&m.CiphersClientServer, &m.CiphersServerClient,
		&m.MACsClientServer, &m.MACsServerClient,
		&m.CompressionClientServer, &m.CompressionServerClient,
		&m.LanguagesClientServer, &m.LanguagesServerClient,
	}
	for _, f := range fields {
		*f, err = r.ReadNameList()
		if err != nil {
			return nil, err
		}
	}

	m.FirstKexPacketFollows, err = r.ReadBool()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadUint32(); err != nil { // reserved
		return nil, Malformed("KEXINIT missing reserved uint32", err)
	}
	return m, nil
}

// --- NEWKEYS ---

// NewKeysMsg is RFC 4253 §7.3. It carries no fields.
type NewKeysMsg struct{}

func (*NewKeysMsg) messageID() uint8  { return MsgNewKeys }
func (*NewKeysMsg) encode(w *Writer) {}

// --- KEXDH_INIT / KEXDH_REPLY ---

// KexDHInitMsg is RFC 4253 §8, the client's ephemeral DH public value.
type KexDHInitMsg struct {
	E *big.Int
}

func (*KexDHInitMsg) messageID() uint8 { return MsgKexDHInit }
func (m *KexDHInitMsg) encode(w *Writer) { w.WriteMPInt(m.E) }

func decodeKexDHInit(r *Reader) (*KexDHInitMsg, error) {
	e, err := r.ReadMPInt()
	if err != nil {
		return nil, err
	}
	return &KexDHInitMsg{E: e}, nil
}

// KexDHReplyMsg is RFC 4253 §8: the server's host key blob, its
// ephemeral DH public value, and its signature over the exchange
// hash.
type KexDHReplyMsg struct {
	HostKey   []byte
	F         *big.Int
	Signature []byte
}

func (*KexDHReplyMsg) messageID() uint8 { return MsgKexDHReply }

func (m *KexDHReplyMsg) encode(w *Writer) {
	w.WriteString(m.HostKey)
	w.WriteMPInt(m.F)
	w.WriteString(m.Signature)
}

func decodeKexDHReply(r *Reader) (*KexDHReplyMsg, error) {
	hostKey, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	f, err := r.ReadMPInt()
	if err != nil {
		return nil, err
	}
	sig, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &KexDHReplyMsg{HostKey: hostKey, F: f, Signature: sig}, nil
}

// --- USERAUTH_REQUEST ---

// UserAuthRequestMsg is RFC 4252 §5. Only the fields relevant to
// Method are meaningful; the others are the zero value — one struct
// shape, a Method-keyed switch at the edges.
type UserAuthRequestMsg struct {
	User    string
	Service string
	Method  string

	// "publickey"
	PubKeyHasSignature bool
	PubKeyAlgo         string
	PubKeyBlob         []byte
	PubKeySignature    []byte

	// "password"
	PasswordChange bool
	OldPassword    string
	Password       string

	// "hostbased"
	HostKeyAlgo   string
	HostKeyBlob   []byte
	Hostname      string
	HostUser      string
	HostSignature []byte
}

func (*UserAuthRequestMsg) messageID() uint8 { return MsgUserAuthRequest }

func (m *UserAuthRequestMsg) encode(w *Writer) {
	w.WriteString([]byte(m.User))
	w.WriteString([]byte(m.Service))
	w.WriteString([]byte(m.Method))
	switch m.Method {
	case "publickey":
		w.WriteBool(m.PubKeyHasSignature)
		w.WriteString([]byte(m.PubKeyAlgo))
		w.WriteString(m.PubKeyBlob)
		if m.PubKeyHasSignature {
			w.WriteString(m.PubKeySignature)
		}
	case "password":
		w.WriteBool(m.PasswordChange)
		if m.PasswordChange {
			w.WriteString([]byte(m.OldPassword))
		}
		w.WriteString([]byte(m.Password))
	case "hostbased":
		w.WriteString([]byte(m.HostKeyAlgo))
		w.WriteString(m.HostKeyBlob)
		w.WriteString([]byte(m.Hostname))
		w.WriteString([]byte(m.HostUser))
		w.WriteString(m.HostSignature)
	case "none":
		// no further fields
	}
}

func decodeUserAuthRequest(r *Reader) (*UserAuthRequestMsg, error) {
	m := &UserAuthRequestMsg{}
	user, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	m.User = string(user)

	service, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	m.Service = string(service)

	method, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	m.Method = string(method)

	switch m.Method {
	case "publickey":
		if m.PubKeyHasSignature, err = r.ReadBool(); err != nil {
			return nil, err
		}
		algo, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		m.PubKeyAlgo = string(algo)
		if m.PubKeyBlob, err = r.ReadString(); err != nil {
			return nil, err
		}
		if m.PubKeyHasSignature {
			if m.PubKeySignature, err = r.ReadString(); err != nil {
				return nil, err
			}
		}
	case "password":
		if m.PasswordChange, err = r.ReadBool(); err != nil {
			return nil, err
		}
		if m.PasswordChange {
			old, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			m.OldPassword = string(old)
		}
		pass, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		m.Password = string(pass)
	case "hostbased":
		algo, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		m.HostKeyAlgo = string(algo)
		if m.HostKeyBlob, err = r.ReadString(); err != nil {
			return nil, err
		}
		host, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		m.Hostname = string(host)
		hostUser, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		m.HostUser = string(hostUser)
		if m.HostSignature, err = r.ReadString(); err != nil {
			return nil, err
		}
	case "none":
		// no further fields
	default:
		return nil, Malformed("unknown userauth method "+m.Method, nil)
	}
	return m, nil
}

// --- USERAUTH_FAILURE / SUCCESS / BANNER / PK_OK ---

// UserAuthFailureMsg is RFC 4252 §5.1.
type UserAuthFailureMsg struct {
	Methods         []string
	PartialSuccess bool
}

func (*UserAuthFailureMsg) messageID() uint8 { return MsgUserAuthFailure }

func (m *UserAuthFailureMsg) encode(w *Writer) {
	w.WriteNameList(m.Methods)
	w.WriteBool(m.PartialSuccess)
}

func decodeUserAuthFailure(r *Reader) (*UserAuthFailureMsg, error) {
	methods, err := r.ReadNameList()
	if err != nil {
		return nil, err
	}
	partial, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &UserAuthFailureMsg{Methods: methods, PartialSuccess: partial}, nil
}

// UserAuthSuccessMsg is RFC 4252 §5.1. It carries no fields.
type UserAuthSuccessMsg struct{}

func (*UserAuthSuccessMsg) messageID() uint8  { return MsgUserAuthSuccess }
func (*UserAuthSuccessMsg) encode(w *Writer) {}

// UserAuthBannerMsg is RFC 4252 §5.4.
type UserAuthBannerMsg struct {
	Message  string
	Language string
}

func (*UserAuthBannerMsg) messageID() uint8 { return MsgUserAuthBanner }

func (m *UserAuthBannerMsg) encode(w *Writer) {
	w.WriteString([]byte(m.Message))
	w.WriteString([]byte(m.Language))
}

func decodeUserAuthBanner(r *Reader) (*UserAuthBannerMsg, error) {
	msg, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	lang, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &UserAuthBannerMsg{Message: safeString(string(msg)), Language: string(lang)}, nil
}

// UserAuthPKOKMsg is RFC 4252 §7, the server's "that key would be
// acceptable" probe reply.
type UserAuthPKOKMsg struct {
	Algo string
	Blob []byte
}

func (*UserAuthPKOKMsg) messageID() uint8 { return MsgUserAuthPKOK }

func (m *UserAuthPKOKMsg) encode(w *Writer) {
	w.WriteString([]byte(m.Algo))
	w.WriteString(m.Blob)
}

func decodeUserAuthPKOK(r *Reader) (*UserAuthPKOKMsg, error) {
	algo, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	blob, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &UserAuthPKOKMsg{Algo: string(algo), Blob: blob}, nil
}

// --- GLOBAL_REQUEST replies ---
//
// GLOBAL_REQUEST (80) itself carries request-type-specific data this
// package does not parse; decoding it yields
// UnimplementedError{MessageID: MsgGlobalRequest}. Its two possible
// replies are still modeled: REQUEST_FAILURE is data-less, and
// REQUEST_SUCCESS carries reply data whose shape depends on the
// original request type, so it is kept as an opaque blob.

// GlobalRequestSuccessMsg is RFC 4254 §4. Data is whatever
// request-type-specific reply payload followed, verbatim.
type GlobalRequestSuccessMsg struct {
	Data []byte
}

func (*GlobalRequestSuccessMsg) messageID() uint8 { return MsgRequestSuccess }
func (m *GlobalRequestSuccessMsg) encode(w *Writer) { w.WriteRaw(m.Data) }

func decodeGlobalRequestSuccess(r *Reader) (*GlobalRequestSuccessMsg, error) {
	data, err := r.ReadRaw(r.Remaining())
	if err != nil {
		return nil, err
	}
	return &GlobalRequestSuccessMsg{Data: data}, nil
}

// GlobalRequestFailureMsg is RFC 4254 §4. It carries no fields.
type GlobalRequestFailureMsg struct{}

func (*GlobalRequestFailureMsg) messageID() uint8  { return MsgRequestFailure }
func (*GlobalRequestFailureMsg) encode(w *Writer) {}

// --- CHANNEL_* (the in-scope subset) ---

// ChannelWindowAdjustMsg is RFC 4254 §5.2.
type ChannelWindowAdjustMsg struct {
	Channel       uint32
	BytesToAdd    uint32
}

func (*ChannelWindowAdjustMsg) messageID() uint8 { return MsgChannelWindowAdjust }

func (m *ChannelWindowAdjustMsg) encode(w *Writer) {
	w.WriteUint32(m.Channel)
	w.WriteUint32(m.BytesToAdd)
}

func decodeChannelWindowAdjust(r *Reader) (*ChannelWindowAdjustMsg, error) {
	ch, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	add, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &ChannelWindowAdjustMsg{Channel: ch, BytesToAdd: add}, nil
}

// ChannelEOFMsg is RFC 4254 §5.3.
type ChannelEOFMsg struct {
	Channel uint32
}

func (*ChannelEOFMsg) messageID() uint8 { return MsgChannelEOF }
func (m *ChannelEOFMsg) encode(w *Writer) { w.WriteUint32(m.Channel) }

func decodeChannelEOF(r *Reader) (*ChannelEOFMsg, error) {
	ch, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &ChannelEOFMsg{Channel: ch}, nil
}

// ChannelCloseMsg is RFC 4254 §5.3.
type ChannelCloseMsg struct {
	Channel uint32
}

func (*ChannelCloseMsg) messageID() uint8 { return MsgChannelClose }
func (m *ChannelCloseMsg) encode(w *Writer) { w.WriteUint32(m.Channel) }

func decodeChannelClose(r *Reader) (*ChannelCloseMsg, error) {
	ch, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &ChannelCloseMsg{Channel: ch}, nil
}

// ChannelSuccessMsg is RFC 4254 §5.4.
type ChannelSuccessMsg struct {
	Channel uint32
}

func (*ChannelSuccessMsg) messageID() uint8 { return MsgChannelSuccess }
func (m *ChannelSuccessMsg) encode(w *Writer) { w.WriteUint32(m.Channel) }

func decodeChannelSuccess(r *Reader) (*ChannelSuccessMsg, error) {
	ch, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &ChannelSuccessMsg{Channel: ch}, nil
}

// ChannelFailureMsg is RFC 4254 §5.4.
type ChannelFailureMsg struct {
	Channel uint32
}

func (*ChannelFailureMsg) messageID() uint8 { return MsgChannelFailure }
func (m *ChannelFailureMsg) encode(w *Writer) { w.WriteUint32(m.Channel) }

func decodeChannelFailure(r *Reader) (*ChannelFailureMsg, error) {
	ch, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &ChannelFailureMsg{Channel: ch}, nil
}

// safeString sanitizes s per RFC 4251 §9.2: every ASCII control
// character below 0x20 except tab, CR, and LF is replaced with a
// space (DEL, 0x7f, is left as is), so a malicious
// disconnect/debug/banner description can't smuggle terminal escapes
// into a log or console.
func safeString(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c < 0x20 && c != '\t' && c != '\r' && c != '\n' {
			out[i] = ' '
		}
	}
	return string(out)
}
