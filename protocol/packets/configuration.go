package packets

import (
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
)

// ClientInformationMetadataKey is the Conn.Metadata key HandleClientInformation
// stores the decoded ClientInformationPacket under.
const ClientInformationMetadataKey = "client_information"

// ClientInformationPacket is C2S ClientInformation, id 0x00.
type ClientInformationPacket struct {
	Locale              netcode.String
	ViewDistance        netcode.Int8
	ChatMode            netcode.VarInt
	ChatColors          netcode.Boolean
	DisplayedSkinParts  netcode.Uint8
	MainHand            netcode.VarInt
	EnableTextFiltering netcode.Boolean
	AllowServerListing  netcode.Boolean
}

func (ClientInformationPacket) ID() netcode.VarInt { return 0x00 }

func DecodeClientInformation(payload []byte) (protocol.Packet, error) {
	locale, n, err := netcode.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	offset := n

	viewDistance, n, err := netcode.DecodeInt8(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	chatMode, n, err := netcode.DecodeVarInt(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	chatColors, n, err := netcode.DecodeBoolean(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	skinParts, n, err := netcode.DecodeUint8(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	mainHand, n, err := netcode.DecodeVarInt(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	textFiltering, n, err := netcode.DecodeBoolean(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	serverListing, _, err := netcode.DecodeBoolean(payload[offset:])
	if err != nil {
		return nil, err
	}

	return ClientInformationPacket{
		Locale:              locale,
		ViewDistance:        viewDistance,
		ChatMode:            chatMode,
		ChatColors:          chatColors,
		DisplayedSkinParts:  skinParts,
		MainHand:            mainHand,
		EnableTextFiltering: textFiltering,
		AllowServerListing:  serverListing,
	}, nil
}

// HandleClientInformation stores the decoded packet for later use; the
// core does not act on it beyond recording it.
func HandleClientInformation(conn protocol.Conn, pkt protocol.Packet) error {
	conn.SetMetadata(ClientInformationMetadataKey, pkt.(ClientInformationPacket))
	return nil
}

// FinishConfigurationPacket is C2S FinishConfiguration, id 0x02.
type FinishConfigurationPacket struct{}

func (FinishConfigurationPacket) ID() netcode.VarInt { return 0x02 }

func DecodeFinishConfiguration(payload []byte) (protocol.Packet, error) {
	return FinishConfigurationPacket{}, nil
}

// HandleFinishConfiguration transitions Configuration -> Play.
func HandleFinishConfiguration(conn protocol.Conn, pkt protocol.Packet) error {
	conn.SetState(protocol.StatePlay)
	return nil
}
